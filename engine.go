package tearsheet

import (
	"fmt"
	"math"
)

// Config holds the scalar conventions shared by every metric. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// RiskFree is the annualized risk-free rate (0.02 means 2% a year).
	// It is de-annualized to the series' period before any excess-return
	// computation.
	RiskFree float64
	// Confidence is the confidence level for tail-risk metrics, in (0,1).
	Confidence float64
	// Periods is the number of trading periods per year, used for
	// annualization (252 for daily series, 12 for monthly).
	Periods int
	// Compounded selects geometric (true) or arithmetic (false)
	// aggregation when rolling returns up into larger periods.
	Compounded bool
}

// DefaultConfig returns the conventional configuration: no risk-free
// rate, 95% confidence, 252 daily trading periods, geometric compounding.
func DefaultConfig() Config {
	return Config{RiskFree: 0, Confidence: 0.95, Periods: 252, Compounded: true}
}

// Validate rejects configurations that indicate programmer error. Data
// degeneracies (empty series, flat series) are never configuration
// errors; they resolve to documented sentinels at the metric level.
func (c Config) Validate() error {
	if math.IsNaN(c.RiskFree) || math.IsInf(c.RiskFree, 0) {
		return fmt.Errorf("risk-free rate must be a finite number, got %v", c.RiskFree)
	}
	if !(c.Confidence > 0 && c.Confidence < 1) {
		return fmt.Errorf("confidence level must be in (0,1), got %v", c.Confidence)
	}
	if c.Periods <= 0 {
		return fmt.Errorf("trading periods per year must be positive, got %d", c.Periods)
	}
	return nil
}

// Engine computes statistics over return series with the consistent
// conventions carried by its Config. An Engine is immutable and safe to
// share: every metric is a deterministic, side-effect-free function of
// its input series.
type Engine struct {
	cfg Config
}

// New builds a metrics engine. This is the single boundary where
// configuration misuse is surfaced as a hard failure.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid metrics configuration: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// periodRiskFree is the configured annual risk-free rate converted to a
// single-period rate on the compounding basis.
func (e *Engine) periodRiskFree() float64 {
	if e.cfg.RiskFree == 0 {
		return 0
	}
	return math.Pow(1+e.cfg.RiskFree, 1/float64(e.cfg.Periods)) - 1
}

// excess returns the series' values minus the per-period risk-free rate.
func (e *Engine) excess(s *Series) []float64 {
	rf := e.periodRiskFree()
	out := make([]float64, len(s.rets))
	for i, r := range s.rets {
		out[i] = r - rf
	}
	return out
}
