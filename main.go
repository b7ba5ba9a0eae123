package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mseongj/pondok-news/config"
	"github.com/mseongj/pondok-news/feed"
	"github.com/mseongj/pondok-news/handlers"
	"github.com/mseongj/pondok-news/logger"
	"github.com/mseongj/pondok-news/routes"
	"github.com/mseongj/pondok-news/views"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg.LogLevel, cfg.LogFormat)

	renderer, err := views.NewRenderer()
	if err != nil {
		lg.Error("failed to load templates: %v", err)
		os.Exit(1)
	}

	client := feed.NewClient(cfg.NewsAPIURL, cfg.UpstreamTimeout, lg.WithField("component", "news-api"))
	h := handlers.New(feed.NewService(client), renderer, lg)
	router := routes.SetupRoutes(h)

	// CORS for the load more endpoints
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "hx-request", "hx-trigger", "hx-current-url", "hx-target"},
	})

	errorLog := lg.Writer()
	defer errorLog.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.LogRequests(h.Recover(c.Handler(router))),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          log.New(errorLog, "", 0),
	}

	go func() {
		lg.Info("Server berjalan di http://localhost:%s (%s)", cfg.Port, cfg)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("graceful shutdown failed: %v", err)
	}
	lg.Info("server stopped")
}
