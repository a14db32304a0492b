// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"go.iotdriver.dev/device/rapi/rendering"
	"go.iotdriver.dev/device/register"
)

type valueHandler struct {
	register *register.Register
}

func (h *valueHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	rendering.RenderText(http.StatusOK, writer, request, h.register.Load().String())
}

// NewValueHandler returns a new instance of http handler
// for serving GET /value.
func NewValueHandler(reg *register.Register) http.Handler {
	return &valueHandler{
		register: reg,
	}
}
