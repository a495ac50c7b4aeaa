package tearsheet

import (
	"math"
	"testing"
)

func TestVolatility(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	approx(t, "Volatility", e.Volatility(s, false), 0.016029486718059455)
	approx(t, "Volatility annualized", e.Volatility(s, true), 0.2544602129999895)

	// a flat series has no dispersion
	flat := SeriesOf(NewDate(2024, 1, 2), 0.01, 0.01, 0.01)
	approx(t, "Volatility flat", e.Volatility(flat, true), 0)
}

func TestRollingVolatility(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	r := e.RollingVolatility(s, 5)
	if r.Len() != 6 {
		t.Fatalf("rolling Len = %d, want 6", r.Len())
	}
	// points are dated at the end of their window
	first, v := r.First()
	if first != NewDate(2024, 1, 6) {
		t.Errorf("first rolling date = %v, want 2024-01-06", first)
	}
	approx(t, "first window", v, 0.3043189116699782)
	_, v = r.Last()
	approx(t, "last window", v, 0.22728836309850975)

	// an oversized window yields nothing
	if r := e.RollingVolatility(s, 11); r.Len() != 0 {
		t.Errorf("oversized window Len = %d, want 0", r.Len())
	}
}

func TestSkew(t *testing.T) {
	e := defaultEngine(t)
	approx(t, "Skew", e.Skew(sampleSeries()), -0.3161403516344815)
	approx(t, "Skew short", e.Skew(SeriesOf(NewDate(2024, 1, 2), 0.01, 0.02)), math.NaN())
	approx(t, "Skew flat", e.Skew(SeriesOf(NewDate(2024, 1, 2), 0.01, 0.01, 0.01)), math.NaN())
}

func TestKurtosis(t *testing.T) {
	e := defaultEngine(t)
	approx(t, "Kurtosis", e.Kurtosis(sampleSeries()), -0.7986643013670057)
	approx(t, "Kurtosis short", e.Kurtosis(SeriesOf(NewDate(2024, 1, 2), 0.01, 0.02, 0.03)), math.NaN())
}
