package durationstring

import (
	"strconv"
	"time"
)

// Format returns the most compact exact representation of d: the quotient of
// the largest unit that divides d without remainder, followed by that unit's
// suffix. Parse(Format(d)) always yields d for non-negative d.
//
// Zero formats as "0y". Negative durations, which Parse never returns, are
// formatted as "-" followed by the form of their magnitude.
func Format(d time.Duration) string {
	if d < 0 {
		// uint64(-d) is also correct for math.MinInt64.
		return "-" + formatNanos(uint64(-d))
	}
	return formatNanos(uint64(d))
}

func formatNanos(ns uint64) string {
	for _, u := range units {
		if ns%u.size == 0 {
			return strconv.FormatUint(ns/u.size, 10) + u.suffix
		}
	}
	// The nanosecond unit always divides.
	panic("unreachable")
}
