package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hako/durafmt"
	"github.com/jparise/durstr/durationstring"
	"github.com/spf13/cobra"
)

var formatLong bool

var formatCmd = &cobra.Command{
	Use:   "format <value>...",
	Short: "Format durations as duration strings",
	Long: `Format Go durations or nanosecond counts as canonical duration strings.

<value> is either a Go duration (e.g., "1h30m0s", "1.5h", "-250ms") or an
integer number of nanoseconds. Negative values start with "-", so pass them
after "--" to keep them from being read as flags.

Examples:
  durstr format 1h30m0s
  durstr format 86400000000000
  durstr format --long 1.5h
  durstr format -- -250ms`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatLong, "long", "l", false,
		"also print the duration in words")
}

// parseNative parses an integer nanosecond count or a Go duration.
func parseNative(s string) (time.Duration, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: expected a Go duration or integer nanoseconds", s)
	}
	return d, nil
}

// describe renders d the way it is printed by format and since.
func describe(d time.Duration, long bool) string {
	s := durationstring.Format(d)
	if long {
		s += "\t" + durafmt.Parse(d).String()
	}
	return s
}

func runFormat(cmd *cobra.Command, args []string) error {
	values := make([]time.Duration, 0, len(args))
	for _, arg := range args {
		d, err := parseNative(arg)
		if err != nil {
			return err
		}
		values = append(values, d)
	}

	for _, d := range values {
		fmt.Fprintln(cmd.OutOrStdout(), describe(d, formatLong))
	}
	return nil
}
