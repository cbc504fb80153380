package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifmahmud/sheetboard/internal/cache"
	"github.com/arifmahmud/sheetboard/internal/config"
	"github.com/arifmahmud/sheetboard/internal/contact"
	"github.com/arifmahmud/sheetboard/internal/sheets"
	"github.com/arifmahmud/sheetboard/internal/web"
	"github.com/arifmahmud/sheetboard/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	source, client := buildRowSource(cfg)
	contacts := buildContactStore(cfg, client)

	server := web.NewServer(cfg, source, contacts)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Log.Info().Msg("server exiting")
}

// buildRowSource initializes the sheets client. A credential failure is
// loud but not fatal: the server still comes up in a degraded state where
// every data route reports the missing configuration.
func buildRowSource(cfg *config.Config) (web.RowSource, *sheets.Client) {
	creds, err := sheets.LoadCredentials(cfg.Sheets.CredentialsEnvJSON, cfg.Sheets.CredentialsFile)
	if err != nil {
		logger.Log.Error().Err(err).Msg("sheets credentials unavailable, data routes will report errors")
		return nil, nil
	}

	client, err := sheets.NewClient(context.Background(), creds)
	if err != nil {
		logger.Log.Error().Err(err).Msg("sheets client init failed, data routes will report errors")
		return nil, nil
	}

	rowCache, err := cache.NewRowCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("row cache unavailable, continuing without caching")
		rowCache = cache.NewNoopRowCache()
	}

	return web.NewSheetSource(client, cfg.Sheets.SpreadsheetName, rowCache), client
}

func buildContactStore(cfg *config.Config, client *sheets.Client) contact.Store {
	switch cfg.Contact.Destination {
	case "postgres":
		store, err := contact.NewPostgresStore(&cfg.Contact.Database)
		if err != nil {
			logger.Log.Error().Err(err).Msg("contact postgres store unavailable, falling back to log")
			return contact.NewLogStore()
		}
		return store
	case "sheet":
		if client == nil {
			logger.Log.Error().Msg("contact sheet store needs a sheets client, falling back to log")
			return contact.NewLogStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		id, err := client.OpenSpreadsheet(ctx, cfg.Sheets.SpreadsheetName)
		if err != nil {
			logger.Log.Error().Err(err).Msg("contact spreadsheet unavailable, falling back to log")
			return contact.NewLogStore()
		}
		return contact.NewSheetStore(client, id, cfg.Sheets.ContactWorksheet)
	default:
		return contact.NewLogStore()
	}
}
