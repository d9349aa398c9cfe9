package durationstring

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	str2duration "github.com/xhit/go-str2duration/v2"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		// Single units
		{"nanoseconds", "100ns", 100 * time.Nanosecond},
		{"microseconds", "100us", 100 * time.Microsecond},
		{"milliseconds", "100ms", 100 * time.Millisecond},
		{"seconds", "1s", time.Second},
		{"minutes", "1m", time.Minute},
		{"hours", "1h", time.Hour},
		{"days", "1d", 86_400 * time.Second},
		{"weeks", "1w", 604_800 * time.Second},
		{"years", "1y", 31_556_926 * time.Second},
		{"zero", "0s", 0},
		{"leading zeros", "007s", 7 * time.Second},

		// Multiple groups
		{"hours and minutes", "1h30m", 5400 * time.Second},
		{"minutes are not carried", "1h128m", 11_280 * time.Second},
		{"milliseconds and microseconds", "1ms100us", 1100 * time.Microsecond},
		{"repeated unit", "1s1s", 2 * time.Second},
		{"descending order not required", "30m1h", 5400 * time.Second},
		{"every unit", "1y1w1d1h1m1s1ms1us1ns", Year + Week + Day + time.Hour + time.Minute + time.Second + time.Millisecond + time.Microsecond + time.Nanosecond},

		// Whitespace
		{"space between groups", "1m 1s", 61 * time.Second},
		{"week and second", "1w 1s", 604_801 * time.Second},
		{"surrounding whitespace", " \t10h\n", 10 * time.Hour},
		{"space inside number", "1 0s", 10 * time.Second},

		// Limits
		{"largest duration", "9223372036854775807ns", math.MaxInt64},
		{"largest whole years", "292y", 292 * Year},
		{"largest total", "292y14w", 292*Year + 14*Week},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Std())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty string", "", ErrFormat},
		{"only whitespace", "   ", ErrFormat},
		{"no number", "ms", ErrFormat},
		{"no unit", "1234", ErrFormat},
		{"unknown unit", "1000x", ErrFormat},
		{"unit is case sensitive", "1H", ErrFormat},
		{"go-style microseconds", "1µs", ErrFormat},
		{"dangling number", "1h2", ErrFormat},
		{"fraction", "1.5h", ErrFormat},
		{"negative", "-1s", ErrFormat},
		{"unit before number", "s1", ErrFormat},
		{"non-ascii digits", "١s", ErrFormat},
		{"years overflow", "584554530873y", ErrOverflow},
		{"one year too many", "293y", ErrOverflow},
		{"nanoseconds overflow", "9223372036854775808ns", ErrOverflow},
		{"sum overflows", "292y15w", ErrOverflow},
		{"sum of large groups overflows", "584554530872y 29w", ErrOverflow},
		{"number exceeds 64 bits", "18446744073709551616ns", strconv.ErrRange},
		{"number error wins over unit error", "18446744073709551616x", strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, got)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.input, parseErr.Input)
		})
	}
}

func TestParseErrorKindsAreDistinct(t *testing.T) {
	_, err := Parse("18446744073709551616s")
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "18446744073709551616", numErr.Num)
	assert.False(t, errors.Is(err, ErrOverflow))
	assert.False(t, errors.Is(err, ErrFormat))

	_, err = Parse("293y")
	assert.False(t, errors.As(err, &numErr))
	assert.False(t, errors.Is(err, ErrFormat))
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("1000x")
	assert.EqualError(t, err, "invalid duration \"1000x\": "+ErrFormat.Error())
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Duration(90*time.Second), MustParse("1m30s"))
	assert.Panics(t, func() { MustParse("1000x") })
}

// TestParseMatchesStr2Duration compares against an independent parser for
// the units both implementations share.
func TestParseMatchesStr2Duration(t *testing.T) {
	inputs := []string{
		"1ns", "1us", "1ms", "1s", "1m", "1h", "1d", "1w",
		"1h30m", "1h128m", "1ms100us", "2w3d4h5m6s7ms8us9ns", "100d",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want, err := str2duration.ParseDuration(input)
			require.NoError(t, err)

			got, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, want, got.Std())
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  [][2]string
	}{
		{"", [][2]string{{"", ""}}},
		{"1h30m", [][2]string{{"1", "h"}, {"30", "m"}}},
		{"1h2", [][2]string{{"1", "h"}, {"2", ""}}},
		{"ms", [][2]string{{"", "ms"}}},
		{"ms1s", [][2]string{{"", "ms"}, {"1", "s"}}},
		{"1m 1s", [][2]string{{"1", "m"}, {"1", "s"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			groups := split(tt.input)
			got := make([][2]string, len(groups))
			for i, g := range groups {
				got[i] = [2]string{g.period.String(), g.unit.String()}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
