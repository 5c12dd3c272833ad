// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/config-hub/internal/app"
	"github.com/MKhiriev/config-hub/internal/utils"
	"github.com/MKhiriev/config-hub/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  app.StatusHealthy,
		Message: app.MsgHealthy,
	}, http.StatusOK)
}
