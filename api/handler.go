// Package api - HTTP handlers for pouch cost estimation
// These handlers wrap the engine - they contain NO estimation logic.
// All logic is delegated to core packages.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pouch-cost/adapters/jobfile"
	"pouch-cost/core/determinism"
	"pouch-cost/core/presets"
	"pouch-cost/core/scenario"
	"pouch-cost/core/summary"
	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
	"pouch-cost/internal/logging"
)

// handleCalculateCost handles POST /calculate-cost
func (s *Server) handleCalculateCost(w http.ResponseWriter, r *http.Request) {
	var spec jobfile.Spec
	if err := s.decode(w, r, &spec); err != nil {
		s.writeError(w, r, err)
		return
	}

	req, err := spec.Requirements(s.config.Defaults)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, s.estimate(r, spec.Label(), req), http.StatusOK)
}

// handlePresetEstimate handles POST /presets/{id}/estimate
func (s *Server) handlePresetEstimate(w http.ResponseWriter, r *http.Request) {
	preset, err := presets.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	req := preset.Requirements(s.config.Defaults)
	s.writeJSON(w, s.estimate(r, preset.Name, req), http.StatusOK)
}

// estimate runs the engine (NO COST LOGIC HERE)
func (s *Server) estimate(r *http.Request, name string, req types.ProductRequirements) EstimateResponse {
	start := time.Now()
	est := s.engine.Estimate(req)
	s.metrics.RecordEstimate(string(req.PouchType))

	hash, err := determinism.HashJSON(req)
	inputHash := ""
	if err == nil {
		inputHash = hash.Hex()
	}

	fields := append(logging.JobFields(req),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Duration("duration", time.Since(start)))
	s.logger.Debug("estimated", fields...)

	return EstimateResponse{
		RequestID:    RequestIDFrom(r.Context()),
		InputHash:    inputHash,
		Name:         name,
		Requirements: req,
		Dimensions:   est.Dimensions,
		Breakdown:    est.Breakdown,
	}
}

// handleSweep handles POST /sweep
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var body SweepRequest
	if err := s.decode(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	param, err := scenario.ParseParam(body.Param)
	if err != nil {
		// An unknown parameter is a bad request here, not a missing resource
		s.writeError(w, r, errors.Newf(errors.TypeInput, "unknown sweep parameter %q", body.Param))
		return
	}
	if limit := s.config.Server.MaxSweepPoints; limit > 0 && len(body.Values) > limit {
		s.writeError(w, r, errors.Newf(errors.TypeInput, "sweep has %d values, limit is %d", len(body.Values), limit))
		return
	}

	base, err := body.Job.Requirements(s.config.Defaults)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	points, err := scenario.Sweep(r.Context(), s.engine, base, param, body.Values, s.config.Server.SweepWorkers)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.RecordSweep(len(points))

	s.writeJSON(w, SweepResponse{
		RequestID: RequestIDFrom(r.Context()),
		Job:       body.Job.Label(),
		Param:     param,
		Points:    points,
	}, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	named, err := s.decodeBatch(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cmp, err := scenario.Compare(r.Context(), s.engine, named, s.config.Server.SweepWorkers)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, CompareResponse{RequestID: RequestIDFrom(r.Context()), Comparison: cmp}, http.StatusOK)
}

// handleSummary handles POST /summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	named, err := s.decodeBatch(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries := make([]summary.Entry, len(named))
	for i, n := range named {
		entries[i] = summary.Entry{Requirements: n.Requirements, Breakdown: s.engine.Compute(n.Requirements)}
		s.metrics.RecordEstimate(string(n.Requirements.PouchType))
	}

	s.writeJSON(w, SummaryResponse{RequestID: RequestIDFrom(r.Context()), Summary: summary.Summarize(entries)}, http.StatusOK)
}

// decodeBatch reads a BatchRequest and resolves every job in it
func (s *Server) decodeBatch(w http.ResponseWriter, r *http.Request) ([]scenario.Named, error) {
	var body BatchRequest
	if err := s.decode(w, r, &body); err != nil {
		return nil, err
	}
	if len(body.Jobs) == 0 {
		return nil, errors.Input("jobs must not be empty")
	}
	if limit := s.config.Server.MaxSweepPoints; limit > 0 && len(body.Jobs) > limit {
		return nil, errors.Newf(errors.TypeInput, "batch has %d jobs, limit is %d", len(body.Jobs), limit)
	}

	named := make([]scenario.Named, len(body.Jobs))
	for i := range body.Jobs {
		req, err := body.Jobs[i].Requirements(s.config.Defaults)
		if err != nil {
			if e, ok := errors.As(err); ok {
				e.WithContext("job", i)
			}
			return nil, err
		}
		named[i] = scenario.Named{Name: body.Jobs[i].Label(), Requirements: req}
	}
	return named, nil
}

// handleRates handles GET /rates
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	tables := s.engine.Tables()
	s.writeJSON(w, RatesResponse{
		Materials: tables.Materials(),
		Rates:     tables.Rates,
		Densities: tables.Densities,
		Fallback: MaterialFallback{
			Rate:    types.DefaultMaterialRate,
			Density: types.DefaultMaterialDensity,
		},
	}, http.StatusOK)
}

// handleConfig handles GET /config
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, ConfigResponse{
		Defaults:       s.config.Defaults,
		PouchTypes:     types.PouchTypes(),
		SweepParams:    scenario.Params(),
		MaxSweepPoints: s.config.Server.MaxSweepPoints,
	}, http.StatusOK)
}

// handlePresets handles GET /presets
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, PresetsResponse{Presets: presets.List()}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "pouch-cost",
		"api_version": "v1",
	}, http.StatusOK)
}
