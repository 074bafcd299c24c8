// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pouch-cost/core/engine"
	"pouch-cost/internal/config"
	"pouch-cost/internal/errors"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Server is the API server
type Server struct {
	router  chi.Router
	engine  *engine.Engine
	config  *config.Config
	metrics *Metrics
	logger  *zap.Logger
	version string
}

// NewServer creates a server pricing against cfg's material tables
func NewServer(cfg *config.Config, version string, logger *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router:  chi.NewRouter(),
		engine:  engine.New(cfg.Tables()),
		config:  cfg,
		metrics: NewMetrics("pouch_cost"),
		logger:  logger,
		version: version,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	r := s.router
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Logger(s.logger))
	r.Use(Instrument(s.metrics))

	// Core endpoints
	r.Post("/calculate-cost", s.handleCalculateCost)
	r.Post("/sweep", s.handleSweep)
	r.Post("/compare", s.handleCompare)
	r.Post("/summary", s.handleSummary)

	// Reference data
	r.Get("/rates", s.handleRates)
	r.Get("/config", s.handleConfig)
	r.Get("/presets", s.handlePresets)
	r.Post("/presets/{id}/estimate", s.handlePresetEstimate)

	// Supporting endpoints
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errors.NotFound("route", r.Method+" "+r.URL.Path))
	})
}

// Metrics exposes the server's collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves the API on the configured address until ctx is
// cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	return Serve(ctx, s.config.Server, s, s.logger)
}

// Serve runs handler with the configured timeouts until ctx is cancelled,
// then drains in-flight requests
func Serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Parsing("decode request body", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := ErrorBody{
		Code:      string(errors.TypeOf(err)),
		Message:   err.Error(),
		RequestID: RequestIDFrom(r.Context()),
	}
	if e, ok := errors.As(err); ok {
		body.Message = e.Message
		if e.Cause != nil {
			body.Message += ": " + e.Cause.Error()
		}
		body.Fields = e.Fields()
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("request_id", body.RequestID), zap.Error(err))
	} else {
		s.logger.Debug("request rejected", zap.String("request_id", body.RequestID), zap.Error(err))
	}

	s.writeJSON(w, ErrorResponse{Error: body}, status)
}

// statusFor maps a domain error type to an HTTP status
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeInput, errors.TypeValidation, errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
