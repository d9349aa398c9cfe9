// Package durationstring converts between compact duration strings such as
// "1h30m", "100ms" or "5m 30s" and time.Duration values.
//
// Recognized units are ns, us, ms, s, m, h, d (24h), w (7d) and y (365.2425d).
// Formatting always chooses the coarsest unit that represents a value exactly,
// so formatted strings parse back to the identical duration.
package durationstring

import "time"

// Duration is a time.Duration whose text form is the compact duration string
// produced by Format.
type Duration time.Duration

// New returns d as a Duration.
func New(d time.Duration) Duration {
	return Duration(d)
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the canonical duration string for d.
func (d Duration) String() string {
	return Format(time.Duration(d))
}

// Add returns d+o. Like time.Duration, the sum wraps on overflow.
func (d Duration) Add(o Duration) Duration {
	return Duration(time.Duration(d) + time.Duration(o))
}

// Sub returns d-o.
func (d Duration) Sub(o Duration) Duration {
	return Duration(time.Duration(d) - time.Duration(o))
}

// Mul returns d scaled by n.
func (d Duration) Mul(n int64) Duration {
	return Duration(time.Duration(d) * time.Duration(n))
}

// Div returns d divided by n, truncated toward zero. It panics if n is 0.
func (d Duration) Div(n int64) Duration {
	return Duration(time.Duration(d) / time.Duration(n))
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to or longer than o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d < o:
		return -1
	case d > o:
		return 1
	default:
		return 0
	}
}

// Sum returns the total of ds.
func Sum(ds ...Duration) Duration {
	var total Duration
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
