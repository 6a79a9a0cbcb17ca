package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "dealership_review/docs"
	"dealership_review/internal/config"
	"dealership_review/internal/handlers"
	"dealership_review/internal/logger"
	"dealership_review/internal/repository"
	"dealership_review/internal/repository/db"
	"dealership_review/internal/repository/remote"
	"dealership_review/internal/server"
	"dealership_review/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Dealership Review API
// @version      1.0
// @description  Accounts, dealerships, sentiment-annotated reviews and the car catalog.
// @BasePath     /
func main() {
	// load configs/config.yml, .env and environment
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	if cfg.UsesDefaultSigningKey() {
		log.Warnw("auth.signing_key not set; using the development key")
	}

	// open DB
	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	dealers := remote.NewDealerClient(remote.Options{
		BaseURL:   cfg.Remote.DealersURL,
		Timeout:   cfg.Remote.Timeout,
		RateLimit: cfg.Remote.RateLimit,
	}, cfg.Remote.ReviewPath)
	sentiment := remote.NewSentimentClient(remote.Options{
		BaseURL:   cfg.Remote.SentimentURL,
		Timeout:   cfg.Remote.Timeout,
		RateLimit: cfg.Remote.RateLimit,
	}, cfg.Remote.SentimentPath)

	repos := repository.NewRepository(conn, dealers, sentiment)
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		SessionTTL: cfg.Auth.SessionTTL,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		CookieName:   cfg.Auth.CookieName,
		CookieSecure: cfg.Auth.CookieSecure,
	})

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	go func() {
		log.Infow("http server listening", "addr", srv.Addr(),
			"dealers_url", cfg.Remote.DealersURL, "sentiment_url", cfg.Remote.SentimentURL)
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
