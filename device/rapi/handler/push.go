// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"io"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"go.iotdriver.dev/device/rapi/rendering"
	"go.iotdriver.dev/device/register"
)

// MaxPushBodySize bounds how much of a push body is read. Anything
// longer cannot be a register symbol.
const MaxPushBodySize = 64

type pushHandler struct {
	register *register.Register
}

// readBody reads at most limit+1 bytes so oversized bodies are detectable.
func readBody(request *http.Request, limit int64) ([]byte, error) {
	return ioutil.ReadAll(io.LimitReader(request.Body, limit+1))
}

func (h *pushHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	data, err := readBody(request, MaxPushBodySize)
	if err != nil {
		log.WithError(err).Warn("Failed to read push request body")
		rendering.RenderBadRequest(writer, request)
		return
	}

	if len(data) > MaxPushBodySize {
		log.WithField("limit", MaxPushBodySize).Warn("Push request body too large")
		rendering.RenderInvalidValue(writer, request)
		return
	}

	value, err := h.register.StoreString(string(data))
	if err != nil {
		log.WithError(err).Info("Rejected register write")
		rendering.RenderInvalidValue(writer, request)
		return
	}

	log.WithField("value", value.String()).Debug("Register value set")
	rendering.RenderValueSet(writer, request)
}

// NewPushHandler returns a new instance of http handler
// for serving POST /push.
func NewPushHandler(reg *register.Register) http.Handler {
	return &pushHandler{
		register: reg,
	}
}
