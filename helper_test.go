package tearsheet

import (
	"math"
	"testing"
)

// sampleReturns is the reference series used across the metric tests.
// It mixes wins, losses and a flat day.
var sampleReturns = []float64{0.01, -0.02, 0.03, 0.015, -0.005, 0.02, -0.01, 0.025, 0.0, 0.01}

// sampleSeries returns the reference series over consecutive days.
func sampleSeries() *Series {
	return SeriesOf(NewDate(2024, 1, 2), sampleReturns...)
}

// defaultEngine builds an engine with the default config, failing the
// test on a config error.
func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New(DefaultConfig()): %v", err)
	}
	return e
}

// approx fails the test when got is not within tolerance of want.
func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	const tolerance = 1e-6
	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			t.Errorf("%s = %v, want NaN", name, got)
		}
		return
	}
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
