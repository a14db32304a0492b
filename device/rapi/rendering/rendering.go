// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rendering

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"go.iotdriver.dev/device/rapi/model"
)

// RenderJSON renders v as application/json with the given status.
func RenderJSON(status int, w http.ResponseWriter, r *http.Request, v interface{}) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.WithError(err).Warn("Error while writing response body")
	}

	return nil
}

// RenderText renders body as text/plain with the given status.
func RenderText(status int, w http.ResponseWriter, r *http.Request, body string) {
	render.Status(r, status)
	render.PlainText(w, r, body)
}

// RenderStatus renders the status document for the given value.
func RenderStatus(w http.ResponseWriter, r *http.Request, currentValue string) {
	if err := RenderJSON(http.StatusOK, w, r, &model.StatusResponse{
		Server:       model.ServerRunning,
		CurrentValue: currentValue,
	}); err != nil {
		log.WithError(err).Warn("Error while rendering response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RenderValueSet renders the push success response.
func RenderValueSet(w http.ResponseWriter, r *http.Request) {
	RenderText(http.StatusOK, w, r, model.ValueSetMessage)
}
