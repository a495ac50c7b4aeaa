package tearsheet

import "math"

// Risk-adjusted ratios: excess return over a risk measure. The shared
// conventions are (a) the annual risk-free rate is de-annualized to the
// series' period before subtraction, (b) annualization multiplies by
// √(periods per year), and (c) an exactly zero risk measure yields the
// zero sentinel, never ±Inf.

// Sharpe returns the annualized Sharpe ratio of excess returns.
func (e *Engine) Sharpe(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	excess := e.excess(s)
	sd := stdev(excess)
	return zeroIfDegenerate(mean(excess), sd) * math.Sqrt(float64(e.cfg.Periods))
}

// SmartSharpe is the Sharpe ratio with the volatility inflated by the
// autocorrelation penalty, compensating for serially correlated returns.
func (e *Engine) SmartSharpe(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	excess := e.excess(s)
	sd := stdev(excess) * autocorrPenalty(s.rets)
	return zeroIfDegenerate(mean(excess), sd) * math.Sqrt(float64(e.cfg.Periods))
}

// RollingSharpe returns the annualized Sharpe ratio over a sliding window.
func (e *Engine) RollingSharpe(s *Series, window int) *Series {
	rf := e.periodRiskFree()
	ann := math.Sqrt(float64(e.cfg.Periods))
	return e.rolling(s, window, func(xs []float64) float64 {
		excess := make([]float64, len(xs))
		for i, x := range xs {
			excess[i] = x - rf
		}
		return zeroIfDegenerate(mean(excess), stdev(excess)) * ann
	})
}

// downsideDeviation is the root mean square of negative excess returns,
// averaged over the full series length.
func downsideDeviation(excess []float64) float64 {
	if len(excess) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range excess {
		if x < 0 {
			sum += x * x
		}
	}
	return math.Sqrt(sum / float64(len(excess)))
}

// Sortino returns the annualized Sortino ratio: mean excess return over
// downside deviation.
func (e *Engine) Sortino(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	excess := e.excess(s)
	dd := downsideDeviation(excess)
	return zeroIfDegenerate(mean(excess), dd) * math.Sqrt(float64(e.cfg.Periods))
}

// SmartSortino is Sortino with the autocorrelation penalty applied to
// the downside deviation.
func (e *Engine) SmartSortino(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	excess := e.excess(s)
	dd := downsideDeviation(excess) * autocorrPenalty(s.rets)
	return zeroIfDegenerate(mean(excess), dd) * math.Sqrt(float64(e.cfg.Periods))
}

// AdjustedSortino divides Sortino by √2 so that its scale is directly
// comparable with the Sharpe ratio.
func (e *Engine) AdjustedSortino(s *Series) float64 {
	return e.Sortino(s) / math.Sqrt2
}

// Omega returns the Omega ratio: probability-weighted gains over losses
// relative to the per-period required return. Zero losses yield the zero
// sentinel.
func (e *Engine) Omega(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	required := e.periodRiskFree()
	var gains, losses float64
	for _, r := range s.rets {
		if d := r - required; d > 0 {
			gains += d
		} else {
			losses -= d
		}
	}
	return zeroIfDegenerate(gains, losses)
}

// RiskReturnRatio is the Sharpe ratio without factoring in the risk-free
// rate, not annualized.
func (e *Engine) RiskReturnRatio(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	return zeroIfDegenerate(mean(s.rets), stdev(s.rets))
}

// Calmar returns CAGR over the absolute maximum drawdown. A series that
// never draws down yields the zero sentinel.
func (e *Engine) Calmar(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	return zeroIfDegenerate(e.CAGR(s), math.Abs(e.MaxDrawdown(s)))
}

// TailRatio measures the ratio between the right and left tail, using
// the configured confidence level as the cutoff quantile.
func (e *Engine) TailRatio(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	left := quantile(s.rets, 1-e.cfg.Confidence)
	return zeroIfDegenerate(math.Abs(quantile(s.rets, e.cfg.Confidence)), math.Abs(left))
}

// CommonSenseRatio is profit factor times tail ratio.
func (e *Engine) CommonSenseRatio(s *Series) float64 {
	return e.ProfitFactor(s) * e.TailRatio(s)
}

// CPCIndex is profit factor times win rate times payoff ratio.
func (e *Engine) CPCIndex(s *Series) float64 {
	return e.ProfitFactor(s) * e.WinRate(s) * e.PayoffRatio(s)
}

// GainToPainRatio is the sum of all returns over the absolute sum of
// the losing ones.
func (e *Engine) GainToPainRatio(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	var total, pain float64
	for _, r := range s.rets {
		total += r
		if r < 0 {
			pain -= r
		}
	}
	return zeroIfDegenerate(total, pain)
}

// autocorrPenalty inflates a risk measure by the lag-weighted
// autocorrelation of the series.
func autocorrPenalty(rets []float64) float64 {
	n := len(rets)
	if n < 3 {
		return 1
	}
	coef := math.Abs(correlation(rets[1:], rets[:n-1]))
	if math.IsNaN(coef) {
		return 1
	}
	var sum float64
	for i := 1; i < n; i++ {
		sum += float64(n-i) / float64(n) * math.Pow(coef, float64(i))
	}
	return math.Sqrt(1 + 2*sum)
}
