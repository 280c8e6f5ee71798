package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-gateway/internal/analytics"
	"auction-gateway/internal/apiclient"
	"auction-gateway/internal/config"
	listings "auction-gateway/internal/listingService"
	profiles "auction-gateway/internal/profileService"
	"auction-gateway/internal/repository"
	"auction-gateway/internal/server"
	"auction-gateway/internal/session"
	"auction-gateway/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	store, err := repository.NewSQLiteRepo(cfg.SessionDBPath)
	if err != nil {
		utils.Fatal("failed to open session store", map[string]any{"path": cfg.SessionDBPath, "error": err.Error()})
	}
	defer store.Close()

	client := apiclient.New(apiclient.Config{
		BaseURL:        cfg.APIBaseURL,
		FallbackToken:  cfg.BearerToken,
		FallbackAPIKey: cfg.APIKey,
		Timeout:        cfg.HTTPTimeout,
	}, nil)

	var opts []session.Option
	if cfg.APIKeyName != "" {
		opts = append(opts, session.WithKeyName(cfg.APIKeyName))
	}
	sessions := session.NewManager(store, client, opts...)
	client.SetCredentials(sessions)

	ctx := context.Background()
	if err := sessions.Init(ctx); err != nil {
		utils.Warn("session restore failed, starting anonymous", map[string]any{"error": err.Error()})
	}

	profileSvc := profiles.NewProfileService(client)
	router := server.SetupRouter(server.Dependencies{
		Session:      sessions,
		Listings:     listings.NewListingService(client),
		Profiles:     profileSvc,
		Dashboard:    analytics.NewCollector(profileSvc, sessions),
		FallbackAuth: cfg.BearerToken != "",
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("auction gateway listening", map[string]any{
			"address":  cfg.HTTPAddress(),
			"upstream": cfg.APIBaseURL,
			"state":    sessions.State().String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("http server error", map[string]any{"error": err.Error()})
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		utils.Error("graceful shutdown error", map[string]any{"error": err.Error()})
	}
	utils.Info("auction gateway stopped", nil)
}
