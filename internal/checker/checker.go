// Package checker validates duration fields in configuration files found in
// local directories and GitHub repositories.
package checker

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/durstr/durationstring"
	"github.com/jparise/durstr/internal/github"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Finding is the result of checking one duration field.
type Finding struct {
	Repo      *github.Repository // nil for local sources
	Root      string             // Local directory the path is relative to
	Path      string
	Field     Field
	Canonical string // Canonical form of the value (empty when invalid)
	Err       error  // Parse failure, nil for valid values
}

// Invalid reports whether the value failed to parse.
func (f Finding) Invalid() bool {
	return f.Err != nil
}

// NonCanonical reports whether a valid value differs from its canonical form.
func (f Finding) NonCanonical() bool {
	return f.Err == nil && f.Field.Value != f.Canonical
}

// Summary counts the outcome of a check.
type Summary struct {
	Files        atomic.Int64
	Fields       atomic.Int64
	Invalid      atomic.Int64
	NonCanonical atomic.Int64
}

// target is a resolved unit of work: a local directory or a repository.
type target struct {
	dir  string
	repo *github.Repository
}

func (t target) String() string {
	if t.repo != nil {
		return t.repo.FullName
	}
	return t.dir
}

// Checker orchestrates the checking process.
type Checker struct {
	output *Output
	client *github.Client
}

// New creates a new Checker.
func New(stdout, stderr io.Writer, colorize, hyperlinks bool) *Checker {
	return &Checker{
		output: NewOutput(stdout, stderr, colorize, hyperlinks),
	}
}

// Check executes the check based on the provided options.
func (c *Checker) Check(ctx context.Context, opts *Options) (*Summary, error) {
	targets, err := c.resolve(ctx, opts)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	if len(targets) == 0 {
		c.output.Warningf("No sources to check")
		return summary, nil
	}

	// Process targets concurrently with bounded parallelism
	var wg sync.WaitGroup
	var errorCount atomic.Int32
	sem := semaphore.NewWeighted(int64(opts.Jobs))

	for _, t := range targets {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(t target) {
			defer wg.Done()
			defer sem.Release(1)

			findings, err := c.checkTarget(ctx, t, opts, summary)
			if err != nil {
				errorCount.Add(1)
				c.output.Warningf("%s: %v", t, err)
				return
			}
			c.report(findings, opts.Strict, summary)
		}(t)
	}

	wg.Wait()

	c.output.Infof("Checked %d fields in %d files: %d invalid, %d non-canonical",
		summary.Fields.Load(), summary.Files.Load(), summary.Invalid.Load(), summary.NonCanonical.Load())

	if int(errorCount.Load()) == len(targets) {
		return summary, fmt.Errorf("failed to check all %d sources", len(targets))
	}

	return summary, nil
}

// resolve turns sources into targets, expanding owners into their
// repositories and removing duplicates while preserving input order.
func (c *Checker) resolve(ctx context.Context, opts *Options) ([]target, error) {
	var all []target
	failed := 0

	for _, source := range opts.Sources {
		if source.Dir != "" {
			all = append(all, target{dir: source.Dir})
			continue
		}

		if c.client == nil {
			client, err := github.NewClient(opts.ClientOpts)
			if err != nil {
				return nil, err
			}
			c.client = client
		}

		if source.Repo != "" {
			r, err := c.client.GetRepo(ctx, source.Owner, source.Repo, source.Ref)
			if err != nil {
				c.output.Warningf("%s: %v", source, err)
				failed++
				continue
			}
			all = append(all, target{repo: &r})
			continue
		}

		repos, err := c.client.ListRepos(ctx, source.Owner, opts.Repos)
		if err != nil {
			return nil, err
		}
		opts.Logger.Debug().Str("owner", source.Owner).Int("repos", len(repos)).Msg("expanded owner")
		for i := range repos {
			all = append(all, target{repo: &repos[i]})
		}
	}

	if len(all) == 0 && failed > 0 {
		return nil, fmt.Errorf("failed to check all %d sources", failed)
	}

	seen := make(map[string]bool)
	targets := make([]target, 0, len(all))
	for _, t := range all {
		key := t.String()
		if t.repo != nil {
			key += "@" + t.repo.Ref
		}
		if !seen[key] {
			seen[key] = true
			targets = append(targets, t)
		}
	}

	return targets, nil
}

func (c *Checker) checkTarget(ctx context.Context, t target, opts *Options, summary *Summary) ([]Finding, error) {
	log := opts.Logger.With().Stringer("source", t).Logger()

	var findings []Finding
	var err error
	if t.repo != nil {
		findings, err = c.checkRepo(ctx, *t.repo, opts, summary)
	} else {
		findings, err = checkDir(ctx, t.dir, opts, summary)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Int("findings", len(findings)).Msg("checked source")

	slices.SortStableFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Field.Line, b.Field.Line),
			cmp.Compare(a.Field.Column, b.Field.Column),
		)
	})

	return findings, nil
}

func selectPaths(paths []string, opts *Options) ([]string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	for _, p := range append([]string{pattern}, opts.Excludes...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
	}

	paths, err := filterByPattern(paths, pattern, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}

	return filterByExcludes(paths, opts.Excludes, opts.IgnoreCase)
}

func checkDir(ctx context.Context, dir string, opts *Options, summary *Summary) ([]Finding, error) {
	fsys := os.DirFS(dir)

	paths, err := doublestar.Glob(fsys, "**", doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	paths, err = selectPaths(paths, opts)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var findings []Finding

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return err
			}

			found, err := checkFile(data, path, opts, summary)
			if err != nil {
				opts.Logger.Warn().Err(err).Str("path", path).Msg("skipping file")
				return nil
			}
			for i := range found {
				found[i].Root = dir
			}

			mu.Lock()
			findings = append(findings, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return findings, nil
}

func (c *Checker) checkRepo(ctx context.Context, repo github.Repository, opts *Options, summary *Summary) ([]Finding, error) {
	tree, err := c.client.GetTree(ctx, repo)
	if err != nil {
		return nil, err
	}

	if tree.Truncated {
		c.output.Warningf("%s: exceeds GitHub's API limit (100k files or 7MB) - results are incomplete", repo.FullName)
	}

	paths, err := selectPaths(tree.Blobs(), opts)
	if err != nil {
		return nil, err
	}

	files, err := c.client.GetFileContents(ctx, repo, paths)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, file := range files {
		found, err := checkFile([]byte(file.Text), file.Path, opts, summary)
		if err != nil {
			opts.Logger.Warn().Err(err).Str("repo", repo.FullName).Str("path", file.Path).Msg("skipping file")
			continue
		}
		for i := range found {
			found[i].Repo = &repo
		}
		findings = append(findings, found...)
	}

	return findings, nil
}

// checkFile parses every duration field of one file.
func checkFile(data []byte, path string, opts *Options, summary *Summary) ([]Finding, error) {
	keys := opts.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}

	fields, err := scanDocument(data, keys, opts.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	summary.Files.Add(1)
	summary.Fields.Add(int64(len(fields)))
	opts.Logger.Debug().Str("path", path).Int("fields", len(fields)).Msg("scanned file")

	findings := make([]Finding, 0, len(fields))
	for _, field := range fields {
		finding := Finding{Path: path, Field: field}

		d, err := durationstring.Parse(field.Value)
		if err != nil {
			finding.Err = err
		} else {
			finding.Canonical = d.String()
		}

		findings = append(findings, finding)
	}

	return findings, nil
}

func (c *Checker) report(findings []Finding, strict bool, summary *Summary) {
	for _, f := range findings {
		switch {
		case f.Invalid():
			summary.Invalid.Add(1)
			c.output.Invalid(f)
		case f.NonCanonical():
			summary.NonCanonical.Add(1)
			if strict {
				c.output.NonCanonical(f)
			}
		}
	}
}
