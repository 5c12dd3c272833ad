// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/config-hub/internal/app"
	"github.com/MKhiriev/config-hub/internal/utils"
	"github.com/MKhiriev/config-hub/models"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// It answers 405 with a JSON detail and lists the methods the matched route
// does support in the Allow header.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}

// notFound answers requests for unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}

// allowedMethods returns the sorted methods registered for the route whose
// pattern equals path exactly.
func allowedMethods(router *chi.Mux, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}
	return nil
}
