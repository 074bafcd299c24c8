// Package api - API types for pouch cost estimation
// These types define the contract for the HTTP endpoints.
// API is stateless, idempotent, and deterministic.
package api

import (
	"pouch-cost/adapters/jobfile"
	"pouch-cost/core/presets"
	"pouch-cost/core/scenario"
	"pouch-cost/core/summary"
	"pouch-cost/core/types"
)

// EstimateResponse is the output of POST /calculate-cost and
// POST /presets/{id}/estimate
type EstimateResponse struct {
	RequestID    string                    `json:"request_id"`
	InputHash    string                    `json:"input_hash"`
	Name         string                    `json:"name"`
	Requirements types.ProductRequirements `json:"requirements"`
	Dimensions   types.OpenDimensions      `json:"dimensions"`
	Breakdown    types.CostBreakdown       `json:"breakdown"`
}

// SweepRequest is the input to POST /sweep
type SweepRequest struct {
	Job    jobfile.Spec `json:"job"`
	Param  string       `json:"param"`
	Values []float64    `json:"values"`
}

// SweepResponse is the output of POST /sweep
type SweepResponse struct {
	RequestID string           `json:"request_id"`
	Job       string           `json:"job"`
	Param     scenario.Param   `json:"param"`
	Points    []scenario.Point `json:"points"`
}

// BatchRequest carries several job specs, for /compare and /summary
type BatchRequest struct {
	Jobs []jobfile.Spec `json:"jobs"`
}

// CompareResponse is the output of POST /compare
type CompareResponse struct {
	RequestID string `json:"request_id"`
	scenario.Comparison
}

// SummaryResponse is the output of POST /summary
type SummaryResponse struct {
	RequestID string `json:"request_id"`
	summary.Summary
}

// RatesResponse is the output of GET /rates
type RatesResponse struct {
	Materials []string           `json:"materials"`
	Rates     types.RateTable    `json:"rates"`
	Densities types.DensityTable `json:"densities"`
	Fallback  MaterialFallback   `json:"fallback"`
}

// MaterialFallback is what an unknown material is priced at
type MaterialFallback struct {
	Rate    float64 `json:"rate"`
	Density float64 `json:"density"`
}

// ConfigResponse is the output of GET /config
type ConfigResponse struct {
	Defaults       types.ProcessDefaults `json:"defaults"`
	PouchTypes     []types.PouchType     `json:"pouch_types"`
	SweepParams    []scenario.Param      `json:"sweep_params"`
	MaxSweepPoints int                   `json:"max_sweep_points"`
}

// PresetsResponse is the output of GET /presets
type PresetsResponse struct {
	Presets []presets.Preset `json:"presets"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}
