package handlers

import (
	"AprovaFlow/internal/approval"
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/service"
	"AprovaFlow/internal/view"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentHandler — записи календаря контента и операции согласования.
type ContentHandler struct {
	Contents *service.ContentService
	Profiles *service.ProfileService
	Logger   *zap.SugaredLogger
}

func NewContentHandler(contents *service.ContentService, profiles *service.ProfileService, logger *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{Contents: contents, Profiles: profiles, Logger: logger}
}

// createRequest — общая форма создания; Mode выбирает трактовку полей.
type createRequest struct {
	Mode           string `json:"mode" validate:"required,oneof=theme content"`
	Date           string `json:"date" validate:"required"`
	FeedTheme      string `json:"feed_theme" validate:"required"`
	Objective      string `json:"objective"`
	ContentType    string `json:"content_type"`
	ContentCapture string `json:"content_capture"`
	ContentStatus  string `json:"content_status"`
	Caption        string `json:"caption"`
	ContentBody    string `json:"content_body"`
	ClientID       string `json:"client_id"`
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	mode := view.Mode(r.URL.Query().Get("view"))
	if mode == "" {
		mode = view.ModeThemes
	}
	if mode != view.ModeThemes && mode != view.ModeContents {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "view must be themes or contents"})
		return
	}

	items, err := h.Contents.List(r.Context(), caller, mode,
		r.URL.Query().Get("month"), r.URL.Query().Get("client_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var (
		created *model.Content
		err     error
	)
	if req.Mode == "theme" {
		created, err = h.Contents.CreateTheme(r.Context(), caller, service.CreateThemeInput{
			Date:        req.Date,
			FeedTheme:   req.FeedTheme,
			Objective:   model.Objective(req.Objective),
			ContentType: model.ContentType(req.ContentType),
			ClientID:    req.ClientID,
		})
	} else {
		created, err = h.Contents.CreateContent(r.Context(), caller, service.CreateContentInput{
			Date:           req.Date,
			FeedTheme:      req.FeedTheme,
			ContentType:    model.ContentType(req.ContentType),
			ContentCapture: model.CaptureType(req.ContentCapture),
			ContentStatus:  model.ContentStatus(req.ContentStatus),
			Caption:        req.Caption,
			ContentBody:    req.ContentBody,
			ClientID:       req.ClientID,
		})
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type setValueRequest struct {
	Value string `json:"value" validate:"required"`
}

func (h *ContentHandler) SetGuideline(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req setValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	c, err := h.Contents.SetGuidelineApproval(r.Context(), caller, chi.URLParam(r, "id"), model.ApprovalStatus(req.Value))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req setValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	c, err := h.Contents.SetContentStatus(r.Context(), caller, chi.URLParam(r, "id"), model.ContentStatus(req.Value))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type rejectRequest struct {
	Track  string `json:"track" validate:"required,oneof=approved_guidelines content_status"`
	Reason string `json:"reason"`
}

func (h *ContentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	c, err := h.Contents.Reject(r.Context(), caller, chi.URLParam(r, "id"), approval.Track(req.Track), req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type updateTextsRequest struct {
	Caption     *string `json:"caption"`
	ContentBody *string `json:"content_body"`
}

func (h *ContentHandler) UpdateTexts(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	var req updateTextsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.Contents.UpdateTexts(r.Context(), caller, chi.URLParam(r, "id"), req.Caption, req.ContentBody)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r, h.Profiles)
	if !ok {
		return
	}

	if err := h.Contents.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
