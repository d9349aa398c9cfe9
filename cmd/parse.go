package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/dustin/go-humanize"
	"github.com/jparise/durstr/durationstring"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <duration>...",
	Short: "Parse duration strings",
	Long: `Parse one or more duration strings and print their canonical form, their
length in nanoseconds and the equivalent Go duration.

Every input is processed; the command fails if any of them is invalid.

Examples:
  durstr parse 1h30m
  durstr parse "1d 12h" 90m 1500ms
  durstr parse --json 2w`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false,
		"print results as JSON")
}

type parseResult struct {
	Input       string                   `json:"input"`
	Duration    *durationstring.Duration `json:"duration,omitempty"`
	Nanoseconds *int64                   `json:"nanoseconds,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

func parseInputs(args []string) ([]parseResult, int) {
	results := make([]parseResult, 0, len(args))
	failed := 0
	for _, arg := range args {
		d, err := durationstring.Parse(arg)
		if err != nil {
			failed++
			results = append(results, parseResult{Input: arg, Error: err.Error()})
			continue
		}
		ns := int64(d)
		results = append(results, parseResult{Input: arg, Duration: &d, Nanoseconds: &ns})
	}
	return results, failed
}

func runParse(cmd *cobra.Command, args []string) error {
	results, failed := parseInputs(args)
	out := cmd.OutOrStdout()

	if parseJSON {
		data, err := json.Marshal(results)
		if err != nil {
			return err
		}
		if err := jsonpretty.Format(out, bytes.NewReader(data), "  ", colorEnabled()); err != nil {
			return err
		}
	} else {
		width := 80
		if isTerminal(out) {
			if w, _, err := term.FromEnv().Size(); err == nil && w > 0 {
				width = w
			}
		}

		tp := tableprinter.New(out, isTerminal(out), width)
		tp.AddHeader([]string{"INPUT", "CANONICAL", "NANOSECONDS", "GO"})
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", r.Error)
				continue
			}
			tp.AddField(r.Input)
			tp.AddField(r.Duration.String())
			tp.AddField(humanize.Comma(*r.Nanoseconds))
			tp.AddField(r.Duration.Std().String())
			tp.EndRow()
		}
		if err := tp.Render(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d durations failed to parse", failed, len(args))
	}
	return nil
}
