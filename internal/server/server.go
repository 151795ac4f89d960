package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raimannma/deadlock-assets-api/internal/config"
	"github.com/raimannma/deadlock-assets-api/internal/handler"
	"github.com/raimannma/deadlock-assets-api/internal/metrics"
)

type Server struct {
	httpServer *http.Server
	catalog    handler.Catalog
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, catalog handler.Catalog) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(catalog))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(cfg.Version, cfg.Environment))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v2 routes
	r.Route("/v2", func(r chi.Router) {
		r.Get("/client-versions", handler.HandleGetClientVersions(catalog))
		r.Get("/ranks", handler.HandleGetRanks(catalog))

		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", handler.HandleGetHeroes(catalog))
			r.Get("/by-name/{name}", handler.HandleGetHeroByName(catalog))
			r.Get("/{id}", handler.HandleGetHeroByID(catalog))
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleGetItems(catalog))
			r.Get("/by-hero-id/{id}", handler.HandleGetItemsByHeroID(catalog))
			r.Get("/by-type/{type}", handler.HandleGetItemsByType(catalog))
			r.Get("/by-slot-type/{slot_type}", handler.HandleGetItemsBySlotType(catalog))
			r.Get("/{id_or_class_name}", handler.HandleGetItem(catalog))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		catalog: catalog,
	}
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
