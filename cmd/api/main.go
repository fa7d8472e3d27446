package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-studio-backend/config"
	_ "go-studio-backend/docs" // Important for Swagger
	v1 "go-studio-backend/internal/delivery/http/v1"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"
	"go-studio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Studio Site Backend
// @version         1.0
// @description     Form intake API for the studio marketing site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting studio backend", "port", cfg.Port)

	// 3. Setup Email Sender
	sender := email.NewResendSender(cfg.ResendAPIKey)
	if !cfg.ContactConfigured() {
		// Not fatal: the intake endpoints answer with their
		// configuration-guard error until the operator fixes the env.
		logger.Log.Warn("Email sending not fully configured - form intake will report it per request")
	}

	// 4. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(cfg, sender, validate)
	subscriptionUC := usecase.NewSubscriptionUsecase(cfg, sender)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		SubscriptionUC: subscriptionUC,
		Config:         cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
