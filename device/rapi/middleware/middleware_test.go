// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.iotdriver.dev/device/rapi/model"
)

func requestIDRecorder(seen *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID, ok := RequestID(r); ok {
			*seen = requestID
		}
	})
}

func TestRequestIDGenerated(t *testing.T) {
	var seen uuid.UUID
	handler := RequestIDMiddleware()(requestIDRecorder(&seen))

	responseRecorder := httptest.NewRecorder()
	handler.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/value", nil))

	require.NotEqual(t, uuid.Nil, seen)
	assert.Equal(t, seen.String(), responseRecorder.Header().Get(model.RequestIDHeader))
}

func TestRequestIDPropagated(t *testing.T) {
	var seen uuid.UUID
	handler := RequestIDMiddleware()(requestIDRecorder(&seen))

	inbound := uuid.New()
	request := httptest.NewRequest("GET", "/value", nil)
	request.Header.Set(model.RequestIDHeader, inbound.String())
	responseRecorder := httptest.NewRecorder()
	handler.ServeHTTP(responseRecorder, request)

	assert.Equal(t, inbound, seen)
	assert.Equal(t, inbound.String(), responseRecorder.Header().Get(model.RequestIDHeader))
}

func TestRequestIDMalformedReplaced(t *testing.T) {
	var seen uuid.UUID
	handler := RequestIDMiddleware()(requestIDRecorder(&seen))

	request := httptest.NewRequest("GET", "/value", nil)
	request.Header.Set(model.RequestIDHeader, "not-a-uuid")
	responseRecorder := httptest.NewRecorder()
	handler.ServeHTTP(responseRecorder, request)

	assert.NotEqual(t, uuid.Nil, seen)
	assert.NotEqual(t, "not-a-uuid", responseRecorder.Header().Get(model.RequestIDHeader))
}

func TestRequestIDMissing(t *testing.T) {
	_, ok := RequestID(httptest.NewRequest("GET", "/value", nil))
	assert.False(t, ok)
}

func TestAccessLogMiddleware(t *testing.T) {
	buf := new(bytes.Buffer)
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(log.InfoLevel)

	var seen uuid.UUID
	handler := RequestIDMiddleware()(AccessLogMiddleware()(requestIDRecorder(&seen)))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/push", nil))

	assert.Contains(t, buf.String(), "API request")
	assert.Contains(t, buf.String(), "method=POST")
	assert.Contains(t, buf.String(), seen.String())
}
