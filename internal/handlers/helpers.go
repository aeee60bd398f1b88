package handlers

import (
	"AprovaFlow/internal/approval"
	"AprovaFlow/internal/middleware"
	"AprovaFlow/internal/policy"
	"AprovaFlow/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// validate — общий валидатор DTO запросов.
var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отображает ошибки слоёв в HTTP-статусы. Текст ошибки
// хранилища отдаётся как есть — без повторов и без отката.
func writeError(w http.ResponseWriter, err error) {
	var illegal *approval.IllegalTransitionError

	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, policy.ErrClientRequired):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, policy.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &illegal):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// callerFromRequest требует аутентификацию и собирает вызывающего с его
// текущей ролью. Ответ при отказе пишет сам: анонимный запрос — 401,
// ошибка чтения профиля — по общей карте ошибок, не 401.
func callerFromRequest(w http.ResponseWriter, r *http.Request, profiles *service.ProfileService) (policy.Caller, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return policy.Caller{}, false
	}
	caller, err := profiles.CallerFor(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return policy.Caller{}, false
	}
	return caller, true
}
