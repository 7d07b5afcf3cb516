/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package support

import "net/http"

// HTTPHandler is a common HTTP handler implementation for the controller API endpoints.
type HTTPHandler struct {
	path   string
	method string
	handle http.HandlerFunc
}

// NewHTTPHandler returns an instance of HTTPHandler that can be used to handle HTTP requests.
func NewHTTPHandler(path, method string, handle http.HandlerFunc) *HTTPHandler {
	return &HTTPHandler{path: path, method: method, handle: handle}
}

// Path returns the endpoint of the handler.
func (h *HTTPHandler) Path() string {
	return h.path
}

// Method returns the HTTP method of the handler.
func (h *HTTPHandler) Method() string {
	return h.method
}

// Handle returns the handler function.
func (h *HTTPHandler) Handle() http.HandlerFunc {
	return h.handle
}
