/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package http // nolint:testpackage // references internal implementation details

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteErrorResponse(rr, http.StatusBadRequest, "something went wrong")

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var response ErrorResponse

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, "something went wrong", response.Message)
}

func TestWriteResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteResponse(rr, map[string]string{"status": "ok"})

	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
