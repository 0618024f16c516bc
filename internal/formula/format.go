package formula

import (
	"fmt"
	"math"
)

// Notation selects how large numbers are rendered.
type Notation int

// Notations
const (
	NotationSuffix Notation = iota
	NotationScientific
)

var suffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi"}

// Formatter renders currency and resource amounts for display. The
// notation preference is explicit state on the formatter, not a
// package-level setting.
type Formatter struct {
	Notation Notation
}

// Format renders v truncated for display. Values below 1000 show as
// whole numbers; larger values are scaled with two truncated decimals.
func (f Formatter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}

	var out string
	switch f.Notation {
	case NotationScientific:
		if v < 1000 {
			out = fmt.Sprintf("%d", int64(v))
		} else {
			exp := int(math.Floor(math.Log10(v)))
			mant := v / math.Pow(10, float64(exp))
			out = fmt.Sprintf("%.2fe%d", truncate(mant, 2), exp)
		}
	default:
		idx := 0
		for v >= 1000 && idx < len(suffixes)-1 {
			v /= 1000
			idx++
		}
		if idx == 0 {
			out = fmt.Sprintf("%d", int64(v))
		} else {
			out = fmt.Sprintf("%.2f%s", truncate(v, 2), suffixes[idx])
		}
	}

	if neg {
		return "-" + out
	}
	return out
}

func truncate(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Trunc(v*shift) / shift
}
