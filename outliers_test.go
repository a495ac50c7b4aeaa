package tearsheet

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	approx(t, "Quantile 95", e.Quantile(s, 0.95), 0.02775)
	approx(t, "Quantile 05", e.Quantile(s, 0.05), -0.0155)
	approx(t, "Quantile 0", e.Quantile(s, 0), -0.02)
	approx(t, "Quantile 1", e.Quantile(s, 1), 0.03)
	approx(t, "Quantile median", e.Quantile(s, 0.5), 0.01)
	approx(t, "Quantile empty", e.Quantile(NewSeries(), 0.5), math.NaN())
}

func TestOutliers(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	out := e.Outliers(s, 0.95)
	// only the 3% day sits above the 95th percentile
	if out.Len() != 1 {
		t.Fatalf("Outliers Len = %d, want 1", out.Len())
	}
	if v, ok := out.Get(NewDate(2024, 1, 4)); !ok || v != 0.03 {
		t.Errorf("Outliers = %v at 2024-01-04, want 0.03", v)
	}
}

func TestRemoveOutliers(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	trimmed := e.RemoveOutliers(s, 0.95)
	if trimmed.Len() != 9 {
		t.Fatalf("RemoveOutliers Len = %d, want 9", trimmed.Len())
	}
	if _, ok := trimmed.Get(NewDate(2024, 1, 4)); ok {
		t.Error("the 3% outlier should be gone")
	}

	// surviving points keep their original dates
	for d, v := range trimmed.Points() {
		orig, ok := s.Get(d)
		if !ok || orig != v {
			t.Errorf("trimmed point (%v, %v) does not exist in the source", d, v)
		}
	}

	// the source is untouched
	if s.Len() != 10 {
		t.Errorf("source Len = %d after trimming, want 10", s.Len())
	}
}
