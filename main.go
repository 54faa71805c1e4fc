package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/config"
	"github.com/yeremiapane/cafe-app/kds"
	"github.com/yeremiapane/cafe-app/router"
	"github.com/yeremiapane/cafe-app/services"
	"github.com/yeremiapane/cafe-app/utils"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	utils.InitJWT(cfg.JWTSecret, cfg.TokenTTL)

	loc, err := cfg.Location()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid timezone: %v", err)
	}

	store := services.NewCafeStore(services.Options{
		Location:       loc,
		SeedSampleData: cfg.SeedSampleData,
	})

	// store events -> dashboard staff
	hub := kds.NewKDSHub()
	store.Subscribe(hub.Notify)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TrackingSimulation {
		tracker := services.NewOrderTracker(store, cfg.TrackingInterval)
		tracker.Start(ctx)
		defer tracker.Stop()
		utils.InfoLogger.Infof("Order tracking simulation every %s", tracker.Interval)
	}

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := utils.CleanupBlacklist(); n > 0 {
					utils.InfoLogger.Infof("Removed %d expired tokens from blacklist", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	r := router.SetupRouter(router.Options{
		Store:          store,
		Hub:            hub,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.InfoLogger.Infof("Listening on %s (timezone %s)", cfg.Addr(), loc)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.ErrorLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Info("Shutting down server...")

	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Server shutdown failed: %v", err)
	}
	utils.InfoLogger.Info("Server stopped")
}
