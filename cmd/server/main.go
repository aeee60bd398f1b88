package main

import (
	"AprovaFlow/internal/config"
	"AprovaFlow/internal/handlers"
	"AprovaFlow/internal/middleware"
	"AprovaFlow/internal/repo"
	"AprovaFlow/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	profileRepo := repo.NewProfileRepository(gormDB)
	contentRepo := repo.NewContentRepository(gormDB)

	userService := service.NewUserService(userRepo)
	profileService := service.NewProfileService(profileRepo, userRepo, sugar)
	contentService := service.NewContentService(contentRepo, sugar)
	adminService := service.NewAdminService(userRepo, profileRepo, contentRepo, &service.LogMailer{Logger: sugar}, sugar)

	h := handlers.NewHandler(userService, contentService, profileService, adminService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
