// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/config-hub/internal/app"
	"github.com/MKhiriev/config-hub/internal/logger"
	"github.com/MKhiriev/config-hub/internal/utils"
	"github.com/MKhiriev/config-hub/models"
)

func (h *Handler) saveConfigs(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	values, err := valuesFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	savedKeys, err := h.services.ConfigService.SaveConfigs(r.Context(), path, values)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("path", path).Strs("keys", savedKeys).Msg("configs stored")

	utils.WriteJSON(w, models.ConfigCreateResponse{
		Message:   app.MsgConfigsStored,
		Path:      path,
		SavedKeys: savedKeys,
	}, http.StatusOK)
}

func (h *Handler) getConfigs(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	configs, err := h.services.ConfigService.GetConfigs(r.Context(), path)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, configs, http.StatusOK)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	key, err := keyFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.services.ConfigService.GetConfig(r.Context(), path, key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateConfigs(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	values, err := valuesFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ConfigService.UpdateConfigs(r.Context(), path, values)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ConfigUpdateResponse{
		Message:      app.MsgConfigsUpdated,
		UpdatedKeys:  result.Updated,
		NotFoundKeys: result.NotFound,
	}, http.StatusOK)
}

func (h *Handler) deletePath(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.ConfigService.DeletePath(r.Context(), path)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ConfigDeleteResponse{
		Message:      app.MsgPathDeleted,
		DeletedCount: &deleted,
	}, http.StatusOK)
}

func (h *Handler) deleteConfig(w http.ResponseWriter, r *http.Request) {
	path, err := pathFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	key, err := keyFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ConfigService.DeleteConfig(r.Context(), path, key); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ConfigDeleteResponse{
		Message: fmt.Sprintf(app.MsgKeyDeletedFormat, key, path),
	}, http.StatusOK)
}
