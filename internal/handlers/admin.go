package handlers

import (
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// AdminHandler — привилегированные операции обслуживания.
type AdminHandler struct {
	Admin    *service.AdminService
	Profiles *service.ProfileService
	Logger   *zap.SugaredLogger
}

func NewAdminHandler(admin *service.AdminService, profiles *service.ProfileService, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{Admin: admin, Profiles: profiles, Logger: logger}
}

type inviteRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

func (h *AdminHandler) InviteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	u, err := h.Admin.Invite(r.Context(), caller, req.Email, model.Role(req.Role), req.DisplayName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": u.ID, "email": u.Email})
}

type deleteUserRequest struct {
	// UserID — id учётной записи в провайдере идентичности,
	// не id строки профиля.
	UserID string `json:"user_id" validate:"required"`
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Admin.DeleteUser(r.Context(), caller, req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
