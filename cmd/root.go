package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// UnmarshalText lets the mode be read from the environment.
func (c *colorMode) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

var (
	version = "dev"

	// Flags.
	color   = colorAuto
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "durstr",
	Short: "Convert and check compact duration strings",
	Long: `durstr converts between compact duration strings and Go durations.

A duration string is one or more <number><unit> groups whose values are
added together. Whitespace between groups is ignored.

Units:
  ns  nanoseconds      s  seconds     d  days (24h)
  us  microseconds     m  minutes     w  weeks (7d)
  ms  milliseconds     h  hours       y  years (365.2425d)

Examples:
  durstr parse 1h30m "5m 30s" 100ms
  durstr format 1h30m0s 1500000000
  durstr since 2024-01-01
  durstr check ./deploy cli/cli`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnv(cmd.Flags())
	},
}

func init() {
	rootCmd.PersistentFlags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log diagnostic details to stderr")

	rootCmd.AddCommand(parseCmd, formatCmd, sinceCmd, checkCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func colorEnabled() bool {
	switch color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.FromEnv().IsColorEnabled()
	}
}

// isTerminal reports whether w is the process's terminal stdout.
func isTerminal(w io.Writer) bool {
	return w == os.Stdout && term.FromEnv().IsTerminalOutput()
}

// newLogger returns the diagnostic logger. Warnings are always written;
// --verbose adds debug events.
func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !colorEnabled()}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
