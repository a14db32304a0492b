// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rapi

import (
	"net/http"

	"github.com/go-chi/chi"

	"go.iotdriver.dev/device/rapi/handler"
	"go.iotdriver.dev/device/rapi/middleware"
	"go.iotdriver.dev/device/rapi/rendering"
	"go.iotdriver.dev/device/register"
)

// NewRouter returns a new instance of chi router serving
// the register API backed by reg.
func NewRouter(reg *register.Register) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AccessLogMiddleware())

	// A known path with the wrong method is reported as not found.
	router.NotFound(rendering.RenderNotFound)
	router.MethodNotAllowed(rendering.RenderNotFound)

	router.Get("/value", handler.NewValueHandler(reg).ServeHTTP)
	router.Get("/status", handler.NewStatusHandler(reg).ServeHTTP)
	router.Post("/push", handler.NewPushHandler(reg).ServeHTTP)

	return router
}
