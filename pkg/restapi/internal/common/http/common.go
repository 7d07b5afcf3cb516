/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package http

import (
	"encoding/json"
	"net/http"

	"github.com/trustbloc/edge-core/pkg/log"
)

var logger = log.New("sss-core/restapi") // nolint:gochecknoglobals // logger instance

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Message string `json:"errMessage,omitempty"`
}

// WriteErrorResponse writes an error response with the given status code.
func WriteErrorResponse(rw http.ResponseWriter, status int, msg string) {
	rw.WriteHeader(status)

	if err := json.NewEncoder(rw).Encode(ErrorResponse{Message: msg}); err != nil {
		logger.Errorf("unable to send error message: %s", err)
	}
}

// WriteResponse writes the given value to the response writer as JSON.
func WriteResponse(rw http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		logger.Errorf("unable to send response: %s", err)
	}
}
