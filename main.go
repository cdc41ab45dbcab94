package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomSchuck/yardcrop/internal/api"
	"github.com/TomSchuck/yardcrop/internal/config"
	"github.com/TomSchuck/yardcrop/internal/geocoding"
	"github.com/TomSchuck/yardcrop/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize services
	listingService := services.NewListingService(services.SeedListings())
	flagService := services.NewFlagService(listingService, cfg.FlagAutoHideThreshold)
	toastService := services.NewToastService(cfg.ToastDefaultDuration)
	authService := services.NewAuthService(cfg)
	geocoder := geocoding.NewMapboxGeocoder(cfg)

	listingService.Subscribe(func() {
		log.Println("Listing store changed")
	})

	router := api.SetupRouter(cfg, listingService, flagService, toastService, authService, geocoder)
	srv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: router,
	}

	go func() {
		fmt.Printf("API listening on :%s\n", cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	fmt.Println("Server gracefully stopped")
}
