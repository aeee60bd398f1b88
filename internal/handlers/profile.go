package handlers

import (
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileHandler — управление профилями (агентство).
type ProfileHandler struct {
	Profiles *service.ProfileService
	Logger   *zap.SugaredLogger
}

func NewProfileHandler(profiles *service.ProfileService, logger *zap.SugaredLogger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Logger: logger}
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	profiles, err := h.Profiles.ListAll(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	clients, err := h.Profiles.ListClients(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=agencia cliente"`
}

func (h *ProfileHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Profiles.UpdateRole(r.Context(), caller, chi.URLParam(r, "id"), model.Role(req.Role)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateNameRequest struct {
	DisplayName string `json:"display_name"`
}

func (h *ProfileHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req updateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Profiles.UpdateDisplayName(r.Context(), caller, chi.URLParam(r, "id"), req.DisplayName); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
