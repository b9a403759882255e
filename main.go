// main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/browser"

	"github.com/Butseraentjes/butseraen-music/infrastructure/config"
	"github.com/Butseraentjes/butseraen-music/infrastructure/logger"
	"github.com/Butseraentjes/butseraen-music/infrastructure/provider"
	"github.com/Butseraentjes/butseraen-music/internal/core/usecases"
	"github.com/Butseraentjes/butseraen-music/internal/handler/web"
)

func main() {
	cfg := config.Load()

	appLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	if err := cfg.Validate(); err != nil {
		appLogger.Error("Invalid configuration", err)
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	gateway, err := provider.NewYoutubeGateway(context.Background(), cfg.APIKey, cfg.ChannelID, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize youtube gateway", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize youtube gateway: %v\n", err)
		os.Exit(1)
	}

	discovery := usecases.NewDiscoveryUseCase(gateway, appLogger, usecases.DiscoveryConfig{
		ActivityLookback:      time.Duration(cfg.ActivityLookbackDays) * 24 * time.Hour,
		SearchLookback:        time.Duration(cfg.SearchLookbackDays) * 24 * time.Hour,
		SearchOverfetch:       cfg.SearchOverfetch,
		ClassifyPlaylistItems: cfg.ClassifyPlaylistItems,
	})

	server := web.NewServer(discovery, appLogger, cfg.Website, "./public")

	if cfg.OpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := browser.OpenURL("http://localhost:" + cfg.Port); err != nil {
				appLogger.Warning("Could not open browser: " + err.Error())
			}
		}()
	}

	appLogger.Info("Serving on port " + cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		appLogger.Error("Server stopped", err)
		fmt.Fprintf(os.Stderr, "Server stopped: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (logger.Logger, error) {
	if cfg.LogDir != "" {
		return logger.NewFileLogger(cfg.LogDir, "butseraen_music")
	}
	return logger.NewWriterLogger(os.Stderr), nil
}
