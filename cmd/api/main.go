package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandkitai/brandkit/internal/ai"
	"github.com/brandkitai/brandkit/internal/api/handlers"
	"github.com/brandkitai/brandkit/internal/api/router"
	"github.com/brandkitai/brandkit/internal/config"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/validator"
	"github.com/brandkitai/brandkit/internal/repository/sqlite"
	"github.com/brandkitai/brandkit/internal/services"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.Database.Driver == "sqlite" {
		if err := sqlite.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	generator, err := ai.NewOpenAIGenerator(cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI generator: %v", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	kitRepo := sqlite.NewBrandKitRepository(db)
	subRepo := sqlite.NewSubscriptionRepository(db)

	userSvc := services.NewUserService(userRepo, log)
	kitSvc := services.NewBrandKitService(kitRepo, userRepo, generator, log, cfg.AI.GenerationTimeout)
	billingSvc := services.NewBillingService(userSvc, subRepo, log)

	val := validator.New()
	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(db, version),
		User:     handlers.NewUserHandler(userSvc, log),
		BrandKit: handlers.NewBrandKitHandler(kitSvc, log, val),
		Billing:  handlers.NewBillingHandler(billingSvc, log, val),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}
