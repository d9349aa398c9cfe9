package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jparise/durstr/durationstring"
	"github.com/jparise/durstr/internal/checker"
	"github.com/jparise/durstr/internal/github"
	"github.com/spf13/cobra"
)

var (
	// Flags.
	files      string
	excludes   []string
	keys       []string
	ignoreCase bool
	strict     bool
	forks      bool
	archived   bool
	hyperlinks bool
	noCache    bool
	cacheDir   string
	cacheTTL   = durationstring.New(24 * time.Hour)
	jobs       int
)

var checkCmd = &cobra.Command{
	Use:   "check <source>...",
	Short: "Check duration fields in configuration files",
	Long: `Check the duration fields of YAML and JSON files in local directories or
GitHub repositories.

A field is checked when its key path matches one of the --key patterns. Key
paths join mapping keys and sequence indices with "/" (e.g.,
"server/timeouts/0/read"). Invalid values are always reported; --strict
also reports values that are not written in canonical form.

<source> can be:
  <dir>                 A local directory
  <owner>               All repositories of a user or organization
  <owner>/<repo>        A repository's default branch
  <owner>/<repo>@<ref>  A repository at a branch, tag or commit

Examples:
  durstr check ./deploy
  durstr check --strict -k "**/*_timeout" ./config
  durstr check --files "charts/**/*.yaml" cli/cli@trunk
  durstr check -E "testdata/**" --forks my-org`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if cacheTTL < 0 {
			return fmt.Errorf("--cache-ttl cannot be negative")
		}
		return nil
	},
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&files, "files", checker.DefaultPattern,
		"pattern selecting the files to check")
	checkCmd.Flags().StringSliceVarP(&excludes, "exclude", "E", []string{},
		"exclude patterns (can be specified multiple times)")
	checkCmd.Flags().StringSliceVarP(&keys, "key", "k", checker.DefaultKeys,
		"key path patterns selecting duration fields")
	checkCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"case-insensitive pattern matching")
	checkCmd.Flags().BoolVar(&strict, "strict", false,
		"also fail on values that are not in canonical form")
	checkCmd.Flags().BoolVar(&forks, "forks", false,
		"include forks when checking an owner")
	checkCmd.Flags().BoolVar(&archived, "archived", false,
		"include archived repositories when checking an owner")
	checkCmd.Flags().BoolVar(&hyperlinks, "hyperlinks", false,
		"link repository findings to GitHub in supporting terminals")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false,
		"bypass cache, always fetch fresh data")
	checkCmd.Flags().StringVar(&cacheDir, "cache-dir", "",
		"override cache directory location")
	checkCmd.Flags().Var(&cacheTTL, "cache-ttl",
		"cache time-to-live (e.g., 1h, 30m, 1d)")
	checkCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent sources and file reads")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources := make([]checker.Source, 0, len(args))
	for _, arg := range args {
		src, err := checker.ParseSource(arg)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	opts := &checker.Options{
		Sources:    sources,
		Pattern:    files,
		Excludes:   excludes,
		Keys:       keys,
		IgnoreCase: ignoreCase,
		Strict:     strict,
		Repos:      github.RepoFilter{Forks: forks, Archived: archived},
		ClientOpts: github.ClientOptions{
			DisableCache: noCache,
			CacheDir:     cacheDir,
			CacheTTL:     cacheTTL.Std(),
		},
		Jobs:   jobs,
		Logger: newLogger(cmd.ErrOrStderr()),
	}

	c := checker.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorEnabled(), hyperlinks)
	summary, err := c.Check(ctx, opts)
	if err != nil {
		return err
	}

	if n := summary.Invalid.Load(); n > 0 {
		return fmt.Errorf("found %d invalid durations", n)
	}
	if n := summary.NonCanonical.Load(); strict && n > 0 {
		return fmt.Errorf("found %d non-canonical durations", n)
	}
	return nil
}
