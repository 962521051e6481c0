package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatPercent renders a probability with two decimals and a % suffix:
// 7.5 -> "7.50%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatMagnitude renders a magnitude with two decimals: 5.5 -> "5.50".
func FormatMagnitude(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Counts at or beyond ±2^63 do not fit int64 and are formatted as floats.
const int64Bound = 1 << 63

// FormatCount renders an event count rounded to an integer with thousands
// grouping: 1234567 -> "1,234,567". Halves round to even.
func FormatCount(v float64) string {
	r := math.RoundToEven(v)
	if r >= int64Bound || r < -int64Bound {
		return humanize.Commaf(r)
	}
	return humanize.Comma(int64(r))
}

// FormatCountTruncated renders an event count truncated toward zero, without
// grouping: 12.9 -> "12".
func FormatCountTruncated(v float64) string {
	t := math.Trunc(v)
	if t >= int64Bound || t < -int64Bound {
		return strconv.FormatFloat(t, 'f', 0, 64)
	}
	return strconv.FormatInt(int64(t), 10)
}

// FormatMapLabel renders the probability shown above a marker: 30 -> "30.0%".
func FormatMapLabel(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
