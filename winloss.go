package tearsheet

import "math"

// Win/loss statistics partition returns into strictly positive and
// strictly negative subsets; zero returns belong to neither. Ratios over
// an empty partition resolve to the zero sentinel rather than a fault.

// partitions returns the winning and losing subsets of the series' values.
func partitions(rets []float64) (wins, losses []float64) {
	for _, r := range rets {
		switch {
		case r > 0:
			wins = append(wins, r)
		case r < 0:
			losses = append(losses, r)
		}
	}
	return wins, losses
}

// WinRate returns the share of winning periods among the non-zero ones.
func (e *Engine) WinRate(s *Series) float64 {
	wins, losses := partitions(s.rets)
	total := len(wins) + len(losses)
	if total == 0 {
		return 0
	}
	return float64(len(wins)) / float64(total)
}

// AvgReturn returns the mean of the non-zero returns.
func (e *Engine) AvgReturn(s *Series) float64 {
	wins, losses := partitions(s.rets)
	if len(wins)+len(losses) == 0 {
		return 0
	}
	return mean(append(wins, losses...))
}

// AvgWin returns the mean winning return, 0 when there are no wins.
func (e *Engine) AvgWin(s *Series) float64 {
	wins, _ := partitions(s.rets)
	if len(wins) == 0 {
		return 0
	}
	return mean(wins)
}

// AvgLoss returns the mean losing return (negative), 0 when there are no losses.
func (e *Engine) AvgLoss(s *Series) float64 {
	_, losses := partitions(s.rets)
	if len(losses) == 0 {
		return 0
	}
	return mean(losses)
}

// PayoffRatio is average win over absolute average loss.
func (e *Engine) PayoffRatio(s *Series) float64 {
	return zeroIfDegenerate(e.AvgWin(s), math.Abs(e.AvgLoss(s)))
}

// ProfitFactor is the sum of winning returns over the absolute sum of
// losing returns.
func (e *Engine) ProfitFactor(s *Series) float64 {
	wins, losses := partitions(s.rets)
	var won, lost float64
	for _, r := range wins {
		won += r
	}
	for _, r := range losses {
		lost -= r
	}
	return zeroIfDegenerate(won, lost)
}

// KellyCriterion returns the fraction of capital the Kelly formula would
// allocate to the strategy: ((payoff * winrate) - lossrate) / payoff.
func (e *Engine) KellyCriterion(s *Series) float64 {
	payoff := e.PayoffRatio(s)
	win := e.WinRate(s)
	return zeroIfDegenerate(payoff*win-(1-win), payoff)
}

// RiskOfRuin estimates the likelihood of losing all capital, from the
// win rate and the series length.
func (e *Engine) RiskOfRuin(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	win := e.WinRate(s)
	return math.Pow((1-win)/(1+win), float64(s.Len()))
}

// ConsecutiveWins returns the longest run of strictly positive returns.
func (e *Engine) ConsecutiveWins(s *Series) int {
	return longestRun(s.rets, func(r float64) bool { return r > 0 })
}

// ConsecutiveLosses returns the longest run of strictly negative returns.
func (e *Engine) ConsecutiveLosses(s *Series) int {
	return longestRun(s.rets, func(r float64) bool { return r < 0 })
}

func longestRun(rets []float64, match func(float64) bool) int {
	longest, run := 0, 0
	for _, r := range rets {
		if match(r) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// Exposure returns the share of periods with a non-zero return, the
// fraction of time the strategy was in the market.
func (e *Engine) Exposure(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	active := 0
	for _, r := range s.rets {
		if r != 0 {
			active++
		}
	}
	return float64(active) / float64(s.Len())
}

// OutlierWinRatio compares the extreme winner (at the given quantile) to
// the mean winning return.
func (e *Engine) OutlierWinRatio(s *Series, q float64) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return zeroIfDegenerate(quantile(s.rets, q), e.AvgWin(s))
}

// OutlierLossRatio compares the extreme loser (at the given quantile) to
// the mean losing return.
func (e *Engine) OutlierLossRatio(s *Series, q float64) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return zeroIfDegenerate(quantile(s.rets, q), e.AvgLoss(s))
}
