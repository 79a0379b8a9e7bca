package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/KenzyTran/stock-import-backend/internal/api"
	"github.com/KenzyTran/stock-import-backend/internal/config"
	"github.com/KenzyTran/stock-import-backend/internal/database"
	"github.com/KenzyTran/stock-import-backend/internal/repository"
	"github.com/KenzyTran/stock-import-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories and services
	batchRepo := repository.NewBatchRepository(db)

	systemService := service.NewSystemService(db)
	importService := service.NewImportService(batchRepo)

	// Create router
	router := api.NewRouter(systemService, importService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Hourly sweep of stale staged uploads
	sweeper := cron.New()
	_, err = sweeper.AddFunc("@hourly", func() {
		removed, sweepErr := service.SweepUploads(cfg.Upload.Dir, cfg.Upload.Retention)
		if sweepErr != nil {
			log.Printf("Upload sweep failed: %v", sweepErr)
			return
		}
		if removed > 0 {
			log.Printf("Upload sweep removed %d stale files", removed)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule upload sweep: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
