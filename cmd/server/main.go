package main

import (
	"fmt"
	"os"

	"github.com/notevault/notevault/internal/api"
	"github.com/notevault/notevault/internal/config"
	"github.com/notevault/notevault/internal/database"
	"github.com/notevault/notevault/internal/database/repository"
	"github.com/notevault/notevault/internal/database/service"
	"github.com/notevault/notevault/internal/handler"
	"github.com/notevault/notevault/internal/hasher"
	"github.com/notevault/notevault/internal/logger"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [NoteVault] Starting API server...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// 5. Initialize Services
	passwordHasher := hasher.New(appLogger)
	userService := service.NewUserService(userRepo, noteRepo, passwordHasher, appLogger)
	noteService := service.NewNoteService(noteRepo, userRepo, appLogger)

	// 6. Initialize Handlers & Router
	userHandler := handler.NewUserHandler(userService, appLogger)
	noteHandler := handler.NewNoteHandler(noteService, appLogger)

	r := api.SetupRouter(userHandler, noteHandler, appLogger)

	// 7. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [NoteVault] HTTP Server running...", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
