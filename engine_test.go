package tearsheet

import (
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		err  bool
	}{
		{"default", func(c *Config) {}, false},
		{"risk-free rate", func(c *Config) { c.RiskFree = 0.05 }, false},
		{"monthly periods", func(c *Config) { c.Periods = 12 }, false},
		{"nan risk-free", func(c *Config) { c.RiskFree = math.NaN() }, true},
		{"inf risk-free", func(c *Config) { c.RiskFree = math.Inf(1) }, true},
		{"zero confidence", func(c *Config) { c.Confidence = 0 }, true},
		{"confidence of one", func(c *Config) { c.Confidence = 1 }, true},
		{"negative confidence", func(c *Config) { c.Confidence = -0.5 }, true},
		{"zero periods", func(c *Config) { c.Periods = 0 }, true},
		{"negative periods", func(c *Config) { c.Periods = -252 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			_, err := New(cfg)
			if tt.err && err == nil {
				t.Errorf("New(%+v) expected an error", cfg)
			}
			if !tt.err && err != nil {
				t.Errorf("New(%+v) unexpected error: %v", cfg, err)
			}
		})
	}
}

func TestPeriodRiskFree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RiskFree = 0.02
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// (1.02)^(1/252) - 1
	approx(t, "periodRiskFree", e.periodRiskFree(), 7.85849419846496e-05)

	// compounding the per-period rate back over a year lands on the
	// annual rate
	annual := math.Pow(1+e.periodRiskFree(), 252) - 1
	approx(t, "recompounded", annual, 0.02)
}

func TestExcess(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()
	// with no risk-free rate, excess returns are the returns
	for i, x := range e.excess(s) {
		if x != sampleReturns[i] {
			t.Fatalf("excess[%d] = %v, want %v", i, x, sampleReturns[i])
		}
	}
}
