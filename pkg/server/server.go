package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticshandler "github.com/retail-tools/sales-atlas/pkg/handlers/analytics"
	predictionhandler "github.com/retail-tools/sales-atlas/pkg/handlers/prediction"
	salesatlasmiddleware "github.com/retail-tools/sales-atlas/pkg/server/middleware"
	"github.com/retail-tools/sales-atlas/pkg/services/analytics"
	"github.com/retail-tools/sales-atlas/pkg/services/scoring"
	"github.com/retail-tools/sales-atlas/pkg/store/duckdb/history"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Analytics analytics.Explorer
	Scorer    scoring.Scorer
	History   history.Store
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	analyticsHandler := analyticshandler.NewHandler(config.Dependencies.Analytics)
	predictionHandler := predictionhandler.NewHandler(config.Dependencies.Scorer, config.Dependencies.History)

	router := chi.NewRouter()

	router.Use(salesatlasmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handleHealth)
		r.Get("/analytics", analyticsHandler.GetAnalytics)
		r.Get("/analytics/metrics", analyticsHandler.GetModelMetrics)
		r.Post("/analytics/refresh", analyticsHandler.RefreshCache)
		r.Post("/predictions", predictionHandler.Predict)
		r.Get("/predictions/history", predictionHandler.GetHistory)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

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

		// Give outstanding requests a deadline for completion.
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

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
