package tearsheet

import "math"

// Tail risk. Parametric VaR uses the sample mean and standard deviation
// with the z-score implied by the configured confidence level; CVaR is
// the empirical expected shortfall beyond that threshold.

// ValueAtRisk returns the per-period value-at-risk: the return below
// which the series falls with probability (1 - confidence), assuming
// normally distributed returns. The sigma multiplier scales the standard
// deviation; pass 1 for the plain estimate.
func (e *Engine) ValueAtRisk(s *Series, sigma float64) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	mu := mean(s.rets)
	sd := sigma * stdev(s.rets)
	return mu + normPPF(1-e.cfg.Confidence)*sd
}

// ConditionalValueAtRisk returns the expected shortfall: the mean of all
// returns at or below the VaR threshold. When no return falls below the
// threshold, CVaR equals VaR (not NaN), so CVaR <= VaR always holds.
func (e *Engine) ConditionalValueAtRisk(s *Series, sigma float64) float64 {
	threshold := e.ValueAtRisk(s, sigma)
	if math.IsNaN(threshold) {
		return threshold
	}
	var sum float64
	var n int
	for _, r := range s.rets {
		if r <= threshold {
			sum += r
			n++
		}
	}
	if n == 0 {
		return threshold
	}
	return sum / float64(n)
}
