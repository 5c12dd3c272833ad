// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(cors.Handler(h.corsOptions()))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/config/", h.saveConfigs)
	router.Get("/config/", h.getConfigs)
	router.Put("/config/", h.updateConfigs)

	router.Get("/config/key/", h.getConfig)
	router.Delete("/config/key/", h.deleteConfig)

	router.Delete("/config/path/", h.deletePath)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}

// corsOptions allows every method and header for the configured origins.
// A wildcard origin is echoed back per request so that credentialed
// requests are accepted by browsers.
func (h *Handler) corsOptions() cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}

	if allowsAnyOrigin(h.allowedOrigins) {
		opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	} else {
		opts.AllowedOrigins = h.allowedOrigins
	}

	return opts
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	return slices.Contains(origins, "*")
}
