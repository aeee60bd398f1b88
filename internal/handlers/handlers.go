package handlers

import (
	"AprovaFlow/internal/config"
	"AprovaFlow/internal/middleware"
	"AprovaFlow/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	contentService *service.ContentService,
	profileService *service.ProfileService,
	adminService *service.AdminService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, profileService, logger, config)
	contentHandler := NewContentHandler(contentService, profileService, logger)
	profileHandler := NewProfileHandler(profileService, logger)
	adminHandler := NewAdminHandler(adminService, profileService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Get("/api/user/me", userHandler.Me)

	// Content routes
	r.Get("/api/contents", contentHandler.List)
	r.Post("/api/contents", contentHandler.Create)
	r.Patch("/api/contents/{id}/guideline", contentHandler.SetGuideline)
	r.Patch("/api/contents/{id}/status", contentHandler.SetStatus)
	r.Post("/api/contents/{id}/reject", contentHandler.Reject)
	r.Patch("/api/contents/{id}", contentHandler.UpdateTexts)
	r.Delete("/api/contents/{id}", contentHandler.Delete)

	// Profile routes
	r.Get("/api/profiles", profileHandler.List)
	r.Get("/api/profiles/clients", profileHandler.ListClients)
	r.Patch("/api/profiles/{id}/role", profileHandler.UpdateRole)
	r.Patch("/api/profiles/{id}/name", profileHandler.UpdateName)

	// Privileged maintenance
	r.Post("/api/admin/invite-user", adminHandler.InviteUser)
	r.Post("/api/admin/delete-user", adminHandler.DeleteUser)

	return &Handler{Router: r}
}
