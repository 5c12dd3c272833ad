// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/config-hub/internal/app"
	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/internal/service"
	"github.com/MKhiriev/config-hub/internal/utils"
	"github.com/MKhiriev/config-hub/models"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound: http.StatusNotFound,

	ErrMissingPathHeader:    http.StatusUnprocessableEntity,
	ErrMissingKeyParam:      http.StatusUnprocessableEntity,
	ErrInvalidBody:          http.StatusUnprocessableEntity,
	models.ErrNotJSONObject: http.StatusUnprocessableEntity,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with {"detail": ...}. Internal failures never leak
// their cause to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		detail = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
