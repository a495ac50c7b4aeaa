package tearsheet

import (
	"fmt"
	"math"
)

// Percent is a ratio expressed in percentage points (42.0 means 42%).
type Percent float64

// AsPercent converts a plain ratio (0.42) into Percent (42.0).
func AsPercent(ratio float64) Percent { return Percent(100 * ratio) }

// Equal compares two percents with display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsNaN reports whether the percent carries the undefined-result sentinel.
func (p Percent) IsNaN() bool { return math.IsNaN(float64(p)) }

func (p Percent) String() string {
	if p.IsNaN() {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats the percent with an explicit sign, and zero as "-".
func (p Percent) SignedString() string {
	if p.IsNaN() {
		return "-"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
