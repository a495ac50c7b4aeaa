package tearsheet

import "math"

// Comparative metrics against a benchmark. Every computation starts with
// the explicit intersection join of Align; when the aligned overlap has
// fewer than two observations (or the benchmark has no variance) the
// result is the NaN sentinel, so a batch tear sheet can proceed past it.

// Greeks holds the regression-derived sensitivity (beta) and the
// annualized excess return versus the benchmark (alpha).
type Greeks struct {
	Alpha float64
	Beta  float64
}

// undefinedGreeks is the explicit undefined result for degenerate overlaps.
func undefinedGreeks() Greeks { return Greeks{Alpha: math.NaN(), Beta: math.NaN()} }

// Greeks computes beta = cov(target, bench) / var(bench) and
// alpha = mean(target) - beta * mean(bench), annualized.
func (e *Engine) Greeks(s, benchmark *Series) Greeks {
	x, y := alignValues(s, benchmark)
	if len(x) < 2 {
		return undefinedGreeks()
	}
	varB := variance(y)
	if varB == 0 || math.IsNaN(varB) {
		return undefinedGreeks()
	}
	beta := covariance(x, y) / varB
	alpha := (mean(x) - beta*mean(y)) * float64(e.cfg.Periods)
	return Greeks{Alpha: alpha, Beta: beta}
}

// RSquared measures the straight-line fit between series and benchmark,
// the square of their correlation on the aligned overlap.
func (e *Engine) RSquared(s, benchmark *Series) float64 {
	x, y := alignValues(s, benchmark)
	if len(x) < 2 {
		return math.NaN()
	}
	corr := correlation(x, y)
	return corr * corr
}

// InformationRatio is the mean active return over its tracking error,
// computed on the aligned overlap.
func (e *Engine) InformationRatio(s, benchmark *Series) float64 {
	x, y := alignValues(s, benchmark)
	if len(x) < 2 {
		return math.NaN()
	}
	diff := make([]float64, len(x))
	for i := range x {
		diff[i] = x[i] - y[i]
	}
	return zeroIfDegenerate(mean(diff), stdev(diff))
}

// RollingBeta returns the beta over a sliding window of the aligned
// overlap, dated at each window's end.
func (e *Engine) RollingBeta(s, benchmark *Series, window int) *Series {
	sa, sb := Align(s, benchmark)
	out := NewSeries()
	if window < 2 || sa.Len() < window {
		return out
	}
	for i := window - 1; i < sa.Len(); i++ {
		x := sa.rets[i-window+1 : i+1]
		y := sb.rets[i-window+1 : i+1]
		varB := variance(y)
		if varB == 0 || math.IsNaN(varB) {
			continue
		}
		out.days = append(out.days, sa.days[i])
		out.rets = append(out.rets, covariance(x, y)/varB)
	}
	return out
}

// RollingGreeks returns the rolling beta and the rolling annualized
// alpha over a sliding window of the aligned overlap.
func (e *Engine) RollingGreeks(s, benchmark *Series, window int) (beta, alpha *Series) {
	sa, sb := Align(s, benchmark)
	beta, alpha = NewSeries(), NewSeries()
	if window < 2 || sa.Len() < window {
		return beta, alpha
	}
	periods := float64(e.cfg.Periods)
	for i := window - 1; i < sa.Len(); i++ {
		x := sa.rets[i-window+1 : i+1]
		y := sb.rets[i-window+1 : i+1]
		varB := variance(y)
		if varB == 0 || math.IsNaN(varB) {
			continue
		}
		b := covariance(x, y) / varB
		a := (mean(x) - b*mean(y)) * periods
		beta.days = append(beta.days, sa.days[i])
		beta.rets = append(beta.rets, b)
		alpha.days = append(alpha.days, sa.days[i])
		alpha.rets = append(alpha.rets, a)
	}
	return beta, alpha
}

// ComparisonRow is one aggregated period of a strategy-versus-benchmark
// comparison.
type ComparisonRow struct {
	Label     string
	Returns   Percent
	Benchmark Percent
	Won       bool
}

// Compare aggregates both series by the given period on their aligned
// overlap and reports them side by side.
func (e *Engine) Compare(s, benchmark *Series, p Period) []ComparisonRow {
	sa, sb := Align(s, benchmark)
	aggS := e.AggregateReturns(sa, p)
	aggB := e.AggregateReturns(sb, p)
	var rows []ComparisonRow
	for i, d := range aggS.days {
		bench, ok := aggB.Get(d)
		if !ok {
			continue
		}
		rows = append(rows, ComparisonRow{
			Label:     p.Range(d).Identifier(),
			Returns:   AsPercent(aggS.rets[i]),
			Benchmark: AsPercent(bench),
			Won:       aggS.rets[i] >= bench,
		})
	}
	return rows
}
