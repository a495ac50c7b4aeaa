package tearsheet

import "math"

// Volatility returns the sample standard deviation of returns. When
// annualize is true it is scaled by √(periods per year).
func (e *Engine) Volatility(s *Series, annualize bool) float64 {
	sd := stdev(s.rets)
	if annualize {
		return sd * math.Sqrt(float64(e.cfg.Periods))
	}
	return sd
}

// RollingVolatility returns the annualized volatility over a sliding
// window. The resulting series starts at the first date with a full
// window.
func (e *Engine) RollingVolatility(s *Series, window int) *Series {
	return e.rolling(s, window, func(xs []float64) float64 {
		return stdev(xs) * math.Sqrt(float64(e.cfg.Periods))
	})
}

// Skew returns the bias-corrected sample skewness (the degree of
// asymmetry of the return distribution around its mean). NaN for fewer
// than three points or a flat series.
func (e *Engine) Skew(s *Series) float64 {
	n := float64(s.Len())
	if n < 3 {
		return math.NaN()
	}
	m := mean(s.rets)
	var m2, m3 float64
	for _, r := range s.rets {
		d := r - m
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return math.NaN()
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// Kurtosis returns the bias-corrected sample excess kurtosis (the degree
// to which the distribution peaks compared to a normal one). NaN for
// fewer than four points or a flat series.
func (e *Engine) Kurtosis(s *Series) float64 {
	n := float64(s.Len())
	if n < 4 {
		return math.NaN()
	}
	m := mean(s.rets)
	var m2, m4 float64
	for _, r := range s.rets {
		d := r - m
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return math.NaN()
	}
	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}

// rolling applies f over every full window of the series, keeping the
// window-end date as the resulting point's date.
func (e *Engine) rolling(s *Series, window int, f func([]float64) float64) *Series {
	out := NewSeries()
	if window <= 0 || s.Len() < window {
		return out
	}
	for i := window - 1; i < s.Len(); i++ {
		v := f(s.rets[i-window+1 : i+1])
		if math.IsNaN(v) {
			continue
		}
		out.days = append(out.days, s.days[i])
		out.rets = append(out.rets, v)
	}
	return out
}
