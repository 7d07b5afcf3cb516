/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package secretsplit provides a controller for the secret splitting REST service.
package secretsplit

import (
	"github.com/trustbloc/sss-core/pkg/restapi/secretsplit/operation"
)

// New returns a new controller instance.
func New() *Controller {
	return &Controller{handlers: operation.GetRESTHandlers()}
}

// Controller contains handlers for the secret splitting service.
type Controller struct {
	handlers []operation.Handler
}

// GetOperations returns all API handlers available for this service.
func (c *Controller) GetOperations() []operation.Handler {
	return c.handlers
}
