package tearsheet

import (
	"math"
	"slices"
)

// Shared sample statistics. All estimators are the unbiased (n-1)
// variants where one exists, so every metric built on them is comparable.

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance is the unbiased sample variance.
func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}

func stdev(xs []float64) float64 { return math.Sqrt(variance(xs)) }

// covariance is the unbiased sample covariance of two equal-length slices.
func covariance(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return math.NaN()
	}
	mx, my := mean(xs), mean(ys)
	var sum float64
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(n-1)
}

// correlation is the sample Pearson correlation.
func correlation(xs, ys []float64) float64 {
	sx, sy := stdev(xs), stdev(ys)
	if sx == 0 || sy == 0 {
		return math.NaN()
	}
	return covariance(xs, ys) / (sx * sy)
}

// quantile computes the q-th quantile with linear interpolation between
// closest ranks, on a sorted copy of the input.
func quantile(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	pos := float64(n-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// normPPF is the standard normal inverse CDF.
func normPPF(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// zeroIfDegenerate maps a ratio whose risk denominator is exactly zero
// to the documented zero sentinel: a flat series carries no meaningful
// risk-adjusted signal, and must not surface as ±Inf.
func zeroIfDegenerate(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom
}
