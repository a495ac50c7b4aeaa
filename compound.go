package tearsheet

import "math"

// Compounding and aggregation. All cumulative figures use geometric
// compounding (∏(1+r) − 1); plain summation over multi-period horizons
// is biased and only appears when the engine is explicitly configured
// with Compounded: false.

// Comp returns the total compounded growth of the series.
func (e *Engine) Comp(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	if !e.cfg.Compounded {
		var sum float64
		for _, r := range s.rets {
			sum += r
		}
		return sum
	}
	prod := 1.0
	for _, r := range s.rets {
		prod *= 1 + r
	}
	return prod - 1
}

// CompSum returns the cumulative growth series: point i holds the
// compounded return from the start of the series up to and including i.
func (e *Engine) CompSum(s *Series) *Series {
	out := NewSeries()
	acc := 1.0
	sum := 0.0
	for i, d := range s.days {
		if e.cfg.Compounded {
			acc *= 1 + s.rets[i]
			out.days = append(out.days, d)
			out.rets = append(out.rets, acc-1)
		} else {
			sum += s.rets[i]
			out.days = append(out.days, d)
			out.rets = append(out.rets, sum)
		}
	}
	return out
}

// ToPrices converts a return series into a wealth curve starting at base.
func (e *Engine) ToPrices(s *Series, base float64) *Series {
	out := NewSeries()
	acc := base
	for i, d := range s.days {
		acc *= 1 + s.rets[i]
		out.days = append(out.days, d)
		out.rets = append(out.rets, acc)
	}
	return out
}

// ToReturns converts a price series into a periodic return series. The
// first price has no predecessor and produces no point.
func ToReturns(prices *Series) *Series {
	out := NewSeries()
	for i := 1; i < len(prices.days); i++ {
		prev := prices.rets[i-1]
		if prev == 0 {
			continue
		}
		out.days = append(out.days, prices.days[i])
		out.rets = append(out.rets, prices.rets[i]/prev-1)
	}
	return out
}

// daysPerYear converts calendar spans to years for CAGR.
const daysPerYear = 365.25

// CAGR returns the compound annual growth rate of the series. The
// elapsed time is the calendar span between the first and last date.
// An empty series or a zero span yields NaN.
func (e *Engine) CAGR(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	first, _ := s.First()
	last, _ := s.Last()
	years := float64(last.Sub(first)) / daysPerYear
	if years <= 0 {
		return math.NaN()
	}
	total := e.Comp(s)
	if total <= -1 {
		return math.NaN()
	}
	return math.Pow(1+total, 1/years) - 1
}

// GeometricMean returns the geometric holding-period return, the
// constant per-period return that compounds to the series' total.
func (e *Engine) GeometricMean(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	prod := 1.0
	for _, r := range s.rets {
		prod *= 1 + r
	}
	if prod < 0 {
		return math.NaN()
	}
	return math.Pow(prod, 1/float64(s.Len())) - 1
}

// AggregateReturns rolls the series up into calendar buckets of the
// given period, compounding (or summing) the returns inside each bucket.
// Each resulting point is dated at the start of its bucket.
func (e *Engine) AggregateReturns(s *Series, p Period) *Series {
	out := NewSeries()
	if s.Len() == 0 || p == Daily {
		return s.Clone()
	}
	var bucket Date
	acc := 1.0
	sum := 0.0
	flush := func() {
		if bucket.IsZero() {
			return
		}
		out.days = append(out.days, bucket)
		if e.cfg.Compounded {
			out.rets = append(out.rets, acc-1)
		} else {
			out.rets = append(out.rets, sum)
		}
	}
	for i, d := range s.days {
		start := d.StartOf(p)
		if start != bucket {
			flush()
			bucket, acc, sum = start, 1.0, 0.0
		}
		acc *= 1 + s.rets[i]
		sum += s.rets[i]
	}
	flush()
	return out
}

// Best returns the best aggregated return for the given period.
func (e *Engine) Best(s *Series, p Period) float64 {
	agg := e.AggregateReturns(s, p)
	if agg.Len() == 0 {
		return math.NaN()
	}
	best := agg.rets[0]
	for _, r := range agg.rets {
		if r > best {
			best = r
		}
	}
	return best
}

// Worst returns the worst aggregated return for the given period.
func (e *Engine) Worst(s *Series, p Period) float64 {
	agg := e.AggregateReturns(s, p)
	if agg.Len() == 0 {
		return math.NaN()
	}
	worst := agg.rets[0]
	for _, r := range agg.rets {
		if r < worst {
			worst = r
		}
	}
	return worst
}
