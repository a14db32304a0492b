// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rendering

import (
	"net/http"

	"go.iotdriver.dev/device/rapi/model"
)

// RenderInvalidValue renders the push validation error response
func RenderInvalidValue(w http.ResponseWriter, r *http.Request) {
	RenderText(http.StatusBadRequest, w, r, model.InvalidValueMessage)
}

// RenderBadRequest renders a response for a request that could not be read
func RenderBadRequest(w http.ResponseWriter, r *http.Request) {
	RenderText(http.StatusBadRequest, w, r, http.StatusText(http.StatusBadRequest))
}

// RenderNotFound renders 404 with an empty body
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
