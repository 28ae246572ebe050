package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobinsights/internal/bootstrap"
	"jobinsights/internal/config"
	"jobinsights/internal/handlers"
	"jobinsights/internal/metrics"
	"jobinsights/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	layout, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Keyword artifacts and job ads are loaded once; a keyword config error
	// aborts startup.
	loaded, err := bootstrap.Load(ctx, cfg, layout, metrics.ObservePass)
	if err != nil {
		log.Fatalf("Failed to load job insights: %v", err)
	}
	defer loaded.Close()
	log.Printf("Loaded %d job ads from %s", loaded.Context.Len(), loaded.Source)

	metrics.Init(loaded.Context)

	srv := server.New(cfg)

	var pinger handlers.Pinger
	if loaded.DB != nil {
		pinger = loaded.DB
	}
	if err := srv.RegisterRoutes(ctx, loaded.Context, layout, pinger); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
