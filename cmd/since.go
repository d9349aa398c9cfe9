package cmd

import (
	"fmt"
	"time"

	"github.com/jparise/durstr/durationstring"
	"github.com/jparise/durstr/internal/timeparse"
	"github.com/spf13/cobra"
)

var (
	sinceRound = durationstring.New(time.Second)
	sinceLong  bool

	now = time.Now
)

var sinceCmd = &cobra.Command{
	Use:   "since <start> [<end>]",
	Short: "Print the time elapsed between two instants",
	Long: `Print the time elapsed since <start>, or between <start> and <end>, as a
duration string.

An instant is an absolute time (e.g., "2024-01-15", "2024-01-15T10:30:00Z")
or a duration string meaning that long ago (e.g., "2w", "36h").

Examples:
  durstr since 2024-01-01
  durstr since 2024-01-01 2024-03-01
  durstr since --round 1h --long 2023-06-01`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSince,
}

func init() {
	sinceCmd.Flags().Var(&sinceRound, "round",
		"round the result to a multiple of this duration (0 disables)")
	sinceCmd.Flags().BoolVarP(&sinceLong, "long", "l", false,
		"also print the duration in words")
}

func runSince(cmd *cobra.Command, args []string) error {
	ref := now()

	start, err := timeparse.ParseInstant(args[0], ref)
	if err != nil {
		return err
	}
	end := ref
	if len(args) == 2 {
		end, err = timeparse.ParseInstant(args[1], ref)
		if err != nil {
			return err
		}
	}

	if end.Before(start) {
		return fmt.Errorf("%s is after %s", args[0], endLabel(args, end))
	}

	elapsed := end.Sub(start)
	if sinceRound > 0 {
		elapsed = elapsed.Round(sinceRound.Std())
	}

	fmt.Fprintln(cmd.OutOrStdout(), describe(elapsed, sinceLong))
	return nil
}

// endLabel names the end of the span in error messages.
func endLabel(args []string, end time.Time) string {
	if len(args) == 2 {
		return args[1]
	}
	return "now (" + end.Format(time.RFC3339) + ")"
}
