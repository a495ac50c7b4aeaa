package tearsheet

import (
	"iter"
	"math"
	"slices"
	"sort"
)

// Series is an ordered sequence of (date, return) points, strictly
// ordered by date with unique dates. Values are periodic (not cumulative)
// returns, typically daily.
//
// A Series is never mutated by the metrics engine: every transform
// (drawdown series, outlier trimming, alignment) produces a new Series,
// because callers reuse the same series across many metric calls and
// must see consistent data. Append is the one mutating operation and is
// meant for the owner building the series.
type Series struct {
	days []Date
	rets []float64
}

// NewSeries returns an empty return series.
func NewSeries() *Series { return &Series{} }

// SeriesOf builds a series from consecutive days starting at 'start'.
// Mostly a convenience for tests and examples.
func SeriesOf(start Date, returns ...float64) *Series {
	s := NewSeries()
	for i, r := range returns {
		s.Append(start.Add(i), r)
	}
	return s
}

// Append adds a point to the series, keeping it sorted. A NaN value is
// dropped (missing observations are excluded, not imputed). An existing
// value at that date is overwritten, giving priority to the last data.
func (s *Series) Append(on Date, r float64) *Series {
	if math.IsNaN(r) {
		return s
	}
	if i := slices.Index(s.days, on); i >= 0 {
		s.rets[i] = r
		return s
	}
	s.days, s.rets = append(s.days, on), append(s.rets, r)
	s.sort()
	return s
}

// chronological is a private implementation to keep both slices sorted together.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.rets[i], c.rets[j] = c.rets[j], c.rets[i]
}

func (s *Series) sort() { sort.Sort(chronological{s}) }

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// First returns the earliest date and value. Zero values if empty.
func (s *Series) First() (Date, float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.rets[0]
}

// Last returns the latest date and value. Zero values if empty.
func (s *Series) Last() (Date, float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.rets[last]
}

// Get returns the value at a given date.
func (s *Series) Get(on Date) (float64, bool) {
	if i := slices.Index(s.days, on); i >= 0 {
		return s.rets[i], true
	}
	return 0, false
}

// Dates returns a copy of the series' dates, in chronological order.
func (s *Series) Dates() []Date { return slices.Clone(s.days) }

// Returns returns a copy of the series' values, in chronological order.
func (s *Series) Returns() []float64 { return slices.Clone(s.rets) }

// Points returns an iterator over all (date, value) pairs in chronological order.
func (s *Series) Points() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, d := range s.days {
			if !yield(d, s.rets[i]) {
				return
			}
		}
	}
}

// Range returns the date range spanned by the series.
func (s *Series) Range() Range {
	first, _ := s.First()
	last, _ := s.Last()
	return Range{From: first, To: last}
}

// Slice returns a new series restricted to the points inside rng.
func (s *Series) Slice(rng Range) *Series {
	out := NewSeries()
	for i, d := range s.days {
		if rng.Contains(d) {
			out.days = append(out.days, d)
			out.rets = append(out.rets, s.rets[i])
		}
	}
	return out
}

// Clone returns an independent copy of the series.
func (s *Series) Clone() *Series {
	return &Series{days: slices.Clone(s.days), rets: slices.Clone(s.rets)}
}

// Equal reports whether two series hold exactly the same points.
func (s *Series) Equal(o *Series) bool {
	return slices.Equal(s.days, o.days) && slices.Equal(s.rets, o.rets)
}

// Align performs the intersection join of two series by date: it returns
// new series containing only the dates present in both a and b, in
// order. Non-overlapping points are excluded, never imputed. All
// two-series metrics go through this join first.
func Align(a, b *Series) (*Series, *Series) {
	x, y := NewSeries(), NewSeries()
	j := 0
	for i, d := range a.days {
		for j < len(b.days) && b.days[j].Before(d) {
			j++
		}
		if j < len(b.days) && b.days[j] == d {
			x.days = append(x.days, d)
			x.rets = append(x.rets, a.rets[i])
			y.days = append(y.days, d)
			y.rets = append(y.rets, b.rets[j])
			j++
		}
	}
	return x, y
}

// alignValues is the internal form of Align for purely numeric metrics.
func alignValues(a, b *Series) (x, y []float64) {
	sa, sb := Align(a, b)
	return sa.rets, sb.rets
}
