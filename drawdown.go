package tearsheet

import (
	"math"
	"sort"
)

// Drawdown describes one drawdown episode: a contiguous run where the
// wealth curve sits below its previous peak.
type Drawdown struct {
	Start  Date    // first date below the peak
	Valley Date    // date of the deepest point
	End    Date    // date of recovery, or the series' last date if still under water
	Days   int     // calendar days from Start to End
	Depth  float64 // deepest drawdown, always <= 0
	Active bool    // true when the series ends while still under water
}

// ToDrawdownSeries converts the return series into a drawdown series:
// the wealth curve relative to its running peak, as (value/peak) - 1.
// The result is 0 at every running-maximum point and negative elsewhere.
func (e *Engine) ToDrawdownSeries(s *Series) *Series {
	out := NewSeries()
	wealth := 1.0
	peak := 1.0
	for i, d := range s.days {
		wealth *= 1 + s.rets[i]
		if wealth > peak {
			peak = wealth
		}
		out.days = append(out.days, d)
		out.rets = append(out.rets, wealth/peak-1)
	}
	return out
}

// MaxDrawdown returns the deepest drawdown of the series, always <= 0.
func (e *Engine) MaxDrawdown(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	dd := e.ToDrawdownSeries(s)
	min := 0.0
	for _, v := range dd.rets {
		if v < min {
			min = v
		}
	}
	return min
}

// DrawdownDetails segments the drawdown series into discrete episodes by
// detecting contiguous runs below zero. A series that never dips below
// its peak yields an empty slice. Episodes are returned in
// chronological order.
func (e *Engine) DrawdownDetails(s *Series) []Drawdown {
	dd := e.ToDrawdownSeries(s)
	var episodes []Drawdown
	var cur *Drawdown
	for i, d := range dd.days {
		v := dd.rets[i]
		if v < 0 {
			if cur == nil {
				cur = &Drawdown{Start: d, Valley: d, Depth: v}
			}
			if v < cur.Depth {
				cur.Depth = v
				cur.Valley = d
			}
			cur.End = d
		} else if cur != nil {
			cur.End = d
			cur.Days = cur.End.Sub(cur.Start)
			episodes = append(episodes, *cur)
			cur = nil
		}
	}
	if cur != nil {
		// still under water at the end of the series
		cur.Days = cur.End.Sub(cur.Start)
		cur.Active = true
		episodes = append(episodes, *cur)
	}
	return episodes
}

// TopDrawdowns returns the n deepest episodes, deepest first.
func (e *Engine) TopDrawdowns(s *Series, n int) []Drawdown {
	episodes := e.DrawdownDetails(s)
	sort.Slice(episodes, func(i, j int) bool { return episodes[i].Depth < episodes[j].Depth })
	if len(episodes) > n {
		episodes = episodes[:n]
	}
	return episodes
}

// LongestDrawdownDays returns the duration in calendar days of the
// longest episode, 0 when the series never draws down.
func (e *Engine) LongestDrawdownDays(s *Series) int {
	longest := 0
	for _, ep := range e.DrawdownDetails(s) {
		if ep.Days > longest {
			longest = ep.Days
		}
	}
	return longest
}

// UlcerIndex is the root mean square of the drawdown series, a downside
// risk measure that penalizes both depth and duration.
func (e *Engine) UlcerIndex(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	dd := e.ToDrawdownSeries(s)
	var sum float64
	for _, v := range dd.rets {
		sum += v * v
	}
	return math.Sqrt(sum / float64(dd.Len()))
}

// UlcerPerformanceIndex is CAGR over the ulcer index, the drawdown
// analogue of the Calmar ratio.
func (e *Engine) UlcerPerformanceIndex(s *Series) float64 {
	if s.Len() < 2 {
		return math.NaN()
	}
	return zeroIfDegenerate(e.CAGR(s), e.UlcerIndex(s))
}

// RecoveryFactor measures how fast the strategy recovers from drawdowns:
// total compounded return over absolute maximum drawdown.
func (e *Engine) RecoveryFactor(s *Series) float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return zeroIfDegenerate(e.Comp(s), math.Abs(e.MaxDrawdown(s)))
}
