package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"biodata-api/config"
	"biodata-api/internal/app"
	"biodata-api/internal/server"

	_ "biodata-api/docs"
)

// @title           Biodata API
// @version         1.0
// @description     HR biodata submission and review service.

// @host      localhost:5000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, closeApp, err := app.New(context.Background(), cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer closeApp()

	srv := server.NewServer(application)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
		return
	case <-quit:
	}

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Application gracefully stopped.")
}
