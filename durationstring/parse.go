package durationstring

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unicode"
)

// group is one number+unit pair of a duration string.
type group struct {
	period strings.Builder
	unit   strings.Builder
}

// Parse converts a duration string such as "100ms", "1h30m" or "5m 30s" into
// a Duration. The string is a sequence of [0-9]+(ns|us|ms|[smhdwy]) groups
// whose values are summed; whitespace anywhere in the input is ignored.
//
// On failure the returned error is a *ParseError wrapping ErrFormat,
// ErrOverflow or a *strconv.NumError.
func Parse(s string) (Duration, error) {
	groups := split(s)
	if len(groups) == 0 {
		return 0, &ParseError{Input: s, Err: ErrFormat}
	}

	var total uint64
	for _, g := range groups {
		d, err := g.value()
		if err != nil {
			return 0, &ParseError{Input: s, Err: err}
		}

		var carry uint64
		total, carry = bits.Add64(total, d, 0)
		if carry != 0 || total > math.MaxInt64 {
			return 0, &ParseError{Input: s, Err: ErrOverflow}
		}
	}

	return Duration(total), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// split removes whitespace and breaks s into groups. A new group starts
// whenever a digit follows a non-digit, so "1h30m" yields two groups and a
// trailing "1h2" yields a second group with an empty unit.
func split(s string) []*group {
	groups := []*group{{}}

	prevDigit := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}

		digit := isDigit(r)
		if digit && !prevDigit {
			groups = append(groups, &group{})
		}
		prevDigit = digit

		current := groups[len(groups)-1]
		if digit {
			current.period.WriteRune(r)
		} else {
			current.unit.WriteRune(r)
		}
	}

	return groups
}

// value converts the group to nanoseconds. The number is validated before
// the unit.
func (g *group) value() (uint64, error) {
	period := g.period.String()
	if period == "" {
		return 0, ErrFormat
	}

	n, err := strconv.ParseUint(period, 10, 64)
	if err != nil {
		return 0, err
	}

	size, ok := lookupUnit(g.unit.String())
	if !ok {
		return 0, ErrFormat
	}

	hi, lo := bits.Mul64(n, size)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return lo, nil
}

// isDigit accepts ASCII digits only; other Unicode digits are unit characters.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
