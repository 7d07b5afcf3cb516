/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/trustbloc/edge-core/pkg/log"

	"github.com/trustbloc/sss-core/pkg/internal/support"
	commhttp "github.com/trustbloc/sss-core/pkg/restapi/internal/common/http"
	"github.com/trustbloc/sss-core/pkg/sss/shamir"
)

const (
	splitEndpoint   = "/secret/split"
	combineEndpoint = "/secret/combine"
)

var logger = log.New("sss-core/operation") // nolint:gochecknoglobals // logger instance

// Handler represents an HTTP handler for each controller API endpoint.
type Handler interface {
	Path() string
	Method() string
	Handle() http.HandlerFunc
}

type splitRequest struct {
	Secret    []byte `json:"secret"`
	Parts     int    `json:"parts"`
	Threshold int    `json:"threshold"`
}

type splitResponse struct {
	Shares [][]byte `json:"shares"`
}

type combineRequest struct {
	Shares [][]byte `json:"shares"`
}

type combineResponse struct {
	Secret []byte `json:"secret"`
}

// GetRESTHandlers gets all controller API handlers available for this service.
func GetRESTHandlers() []Handler {
	return []Handler{
		support.NewHTTPHandler(splitEndpoint, http.MethodPost, splitHandler),
		support.NewHTTPHandler(combineEndpoint, http.MethodPost, combineHandler),
	}
}

// Split Secret swagger:route POST /secret/split splitSecretReq
//
// Splits a secret into shares, a threshold number of which reconstruct it.
// Byte fields ride the standard JSON base64 encoding; the shares themselves
// are the raw byte layout produced by the splitting scheme.
//
// Responses:
//    default: genericError
//        200: splitSecretRes
func splitHandler(rw http.ResponseWriter, req *http.Request) {
	var request splitRequest

	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf("invalid split request: %s", err))

		return
	}

	shares, err := shamir.Split(request.Secret, request.Parts, request.Threshold)
	if err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, err.Error())

		return
	}

	logger.Debugf("split secret into %d shares (threshold %d)", len(shares), request.Threshold)

	commhttp.WriteResponse(rw, splitResponse{Shares: shares})
}

// Combine Secret swagger:route POST /secret/combine combineSecretReq
//
// Reconstructs a secret from a threshold number of shares. The shares may be
// supplied in any order.
//
// Responses:
//    default: genericError
//        200: combineSecretRes
func combineHandler(rw http.ResponseWriter, req *http.Request) {
	var request combineRequest

	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, fmt.Sprintf("invalid combine request: %s", err))

		return
	}

	secret, err := shamir.Combine(request.Shares)
	if err != nil {
		commhttp.WriteErrorResponse(rw, http.StatusBadRequest, err.Error())

		return
	}

	logger.Debugf("combined %d shares", len(request.Shares))

	commhttp.WriteResponse(rw, combineResponse{Secret: secret})
}
