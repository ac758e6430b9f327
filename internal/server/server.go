// Package server exposes guesscheck.Estimate over HTTP: a net/http
// handler usable directly or behind Chi, plus optional build-tag-gated
// adapters for Gin, Fiber, and Echo. All adapters share the same
// request/response shape and Config.
package server

import (
	"github.com/rafaelsanzio/guesscheck"
)

// Config configures the HTTP adapters.
type Config struct {
	// MinScore, when > 0, turns /estimate into a pass/fail gate: a
	// password scoring below MinScore gets HTTP 422 instead of 200,
	// still carrying the full estimate in the body. Zero (default)
	// always returns 200 and leaves the gating decision to the caller.
	MinScore int

	// GuesscheckConfig is passed to guesscheck.EstimateWithConfig. The
	// zero value is invalid (ReferenceYear 0), so a zero GuesscheckConfig
	// is treated as DefaultConfig.
	GuesscheckConfig guesscheck.Config
}

// DefaultConfig returns a Config with no score gate and the estimator's
// default configuration.
func DefaultConfig() Config {
	return Config{GuesscheckConfig: guesscheck.DefaultConfig()}
}

// estimateRequest is the JSON request body every adapter accepts.
type estimateRequest struct {
	Password   string   `json:"password"`
	UserInputs []string `json:"user_inputs"`
}

// estimateResponse wraps a Result for adapters that want to report the
// gate decision alongside it.
type estimateResponse struct {
	guesscheck.Result
	Passed bool `json:"passed"`
}

// resolveConfig returns cfg.GuesscheckConfig, or DefaultConfig's
// GuesscheckConfig when that one is invalid (the zero value included).
func resolveConfig(cfg Config) guesscheck.Config {
	gc := cfg.GuesscheckConfig
	if gc.Validate() != nil {
		gc = guesscheck.DefaultConfig()
	}
	return gc
}

func estimate(cfg Config, password string, userInputs []string) estimateResponse {
	result, _ := guesscheck.EstimateWithConfig(password, userInputs, resolveConfig(cfg))
	passed := cfg.MinScore == 0 || result.Score >= cfg.MinScore
	return estimateResponse{Result: result, Passed: passed}
}
