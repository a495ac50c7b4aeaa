package tearsheet

import (
	"math"
	"testing"
)

func TestSharpe(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	approx(t, "Sharpe", e.Sharpe(s), 7.42748729837807)
	approx(t, "Sharpe single point", e.Sharpe(SeriesOf(NewDate(2024, 1, 2), 0.01)), math.NaN())

	// a flat series has zero volatility, the ratio collapses to the
	// zero sentinel instead of blowing up
	flat := SeriesOf(NewDate(2024, 1, 2), 0.01, 0.01, 0.01)
	approx(t, "Sharpe flat", e.Sharpe(flat), 0)

	// a positive risk-free rate lowers the ratio
	cfg := DefaultConfig()
	cfg.RiskFree = 0.05
	withRf, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := withRf.Sharpe(s); got >= e.Sharpe(s) {
		t.Errorf("Sharpe with rf = %v, want lower than %v", got, e.Sharpe(s))
	}
}

func TestSmartSharpe(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	approx(t, "SmartSharpe", e.SmartSharpe(s), 3.9901736685360962)
	// the penalty can only shrink the ratio
	if e.SmartSharpe(s) > e.Sharpe(s) {
		t.Error("SmartSharpe should not exceed Sharpe")
	}
}

func TestRollingSharpe(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	r := e.RollingSharpe(s, 5)
	if r.Len() != 6 {
		t.Fatalf("rolling Len = %d, want 6", r.Len())
	}
	first, _ := r.First()
	if first != NewDate(2024, 1, 6) {
		t.Errorf("first rolling date = %v, want 2024-01-06", first)
	}
}

func TestSortino(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	approx(t, "Sortino", e.Sortino(s), 16.43167672515498)
	approx(t, "SmartSortino", e.SmartSortino(s), 8.82737878433373)
	approx(t, "AdjustedSortino", e.AdjustedSortino(s), 11.618950038622247)

	// with no losing period there is no downside deviation
	winners := SeriesOf(NewDate(2024, 1, 2), 0.01, 0.02, 0.03)
	approx(t, "Sortino no losses", e.Sortino(winners), 0)
}

func TestOmega(t *testing.T) {
	e := defaultEngine(t)
	approx(t, "Omega", e.Omega(sampleSeries()), 3.142857142857143)

	winners := SeriesOf(NewDate(2024, 1, 2), 0.01, 0.02)
	approx(t, "Omega no losses", e.Omega(winners), 0)
}

func TestRiskReturnRatio(t *testing.T) {
	e := defaultEngine(t)
	approx(t, "RiskReturnRatio", e.RiskReturnRatio(sampleSeries()), 0.46788772041903265)
}

func TestCalmar(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	// over 9 calendar days the annualized growth dwarfs the 2% drawdown
	approx(t, "Calmar", e.Calmar(s), 940.3442421688818)

	// no drawdown at all
	winners := SeriesOf(NewDate(2024, 1, 2), 0.01, 0.02, 0.03)
	approx(t, "Calmar no drawdown", e.Calmar(winners), 0)
}

func TestTailRatio(t *testing.T) {
	e := defaultEngine(t)
	approx(t, "TailRatio", e.TailRatio(sampleSeries()), 1.7903225806451608)
}

func TestCompositeRatios(t *testing.T) {
	e := defaultEngine(t)
	s := sampleSeries()

	approx(t, "CommonSenseRatio", e.CommonSenseRatio(s), 5.6267281105990765)
	approx(t, "CPCIndex", e.CPCIndex(s), 3.2925170068027203)
	approx(t, "GainToPainRatio", e.GainToPainRatio(s), 2.142857142857143)
}
