package tearsheet

// Outlier handling. Filters are quantile-based and always preserve the
// original dates of retained points: no reindexing or compaction that
// would misalign a trimmed series against a benchmark.

// Quantile returns the q-th quantile of the series' returns, with linear
// interpolation between closest ranks.
func (e *Engine) Quantile(s *Series, q float64) float64 {
	return quantile(s.rets, q)
}

// Outliers returns the points whose return is strictly above the q-th
// quantile.
func (e *Engine) Outliers(s *Series, q float64) *Series {
	cut := quantile(s.rets, q)
	out := NewSeries()
	for i, d := range s.days {
		if s.rets[i] > cut {
			out.days = append(out.days, d)
			out.rets = append(out.rets, s.rets[i])
		}
	}
	return out
}

// RemoveOutliers returns the series without the points above the q-th
// quantile. Surviving points keep their dates and relative order.
func (e *Engine) RemoveOutliers(s *Series, q float64) *Series {
	cut := quantile(s.rets, q)
	out := NewSeries()
	for i, d := range s.days {
		if s.rets[i] < cut {
			out.days = append(out.days, d)
			out.rets = append(out.rets, s.rets[i])
		}
	}
	return out
}
