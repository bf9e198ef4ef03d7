// Package server exposes the estimation engine over HTTP.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/cloudmigrate/migration-estimator/internal/engine"
)

// Config holds the listen address and shutdown behavior.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// WebAPI is the HTTP front end for the estimation engine.
type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// New builds the router and wires the estimation handler.
func New(logger zerolog.Logger, cfg Config, eng *engine.Engine) *WebAPI {
	handler := NewHandler(eng)

	router := chi.NewRouter()
	router.Use(requestLogger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", handler.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/estimate", handler.Estimate)
	})

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the mux for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start serves until an error occurs or a termination signal arrives, then
// drains outstanding requests.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}
		if err != nil {
			return err
		}
	}

	return nil
}
