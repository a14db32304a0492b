// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"go.iotdriver.dev/device/rapi/model"
)

// RequestIDMiddleware reuses a well-formed inbound X-Request-Id or generates
// a new one, stores it in the request context and echoes it on the response.
func RequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			requestID, err := uuid.Parse(r.Header.Get(model.RequestIDHeader))
			if err != nil {
				requestID = uuid.New()
			}

			w.Header().Set(model.RequestIDHeader, requestID.String())
			r = r.WithContext(context.WithValue(r.Context(), model.RequestIDCtxKey, requestID))
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// RequestID returns the identifier stored by RequestIDMiddleware.
func RequestID(r *http.Request) (uuid.UUID, bool) {
	requestID, ok := r.Context().Value(model.RequestIDCtxKey).(uuid.UUID)
	return requestID, ok
}

func AccessLogMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			entry := log.WithFields(log.Fields{"method": r.Method, "url": r.URL.String()})
			if requestID, ok := RequestID(r); ok {
				entry = entry.WithField("requestId", requestID.String())
			}
			entry.Debug("API request")
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
