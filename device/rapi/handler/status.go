// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"go.iotdriver.dev/device/rapi/rendering"
	"go.iotdriver.dev/device/register"
)

type statusHandler struct {
	register *register.Register
}

func (h *statusHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	// single snapshot, a concurrent push must not split the document
	current := h.register.Load()
	rendering.RenderStatus(writer, request, current.String())
}

// NewStatusHandler returns a new instance of http handler
// for serving GET /status.
func NewStatusHandler(reg *register.Register) http.Handler {
	return &statusHandler{
		register: reg,
	}
}
