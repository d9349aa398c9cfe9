package checker

import (
	"fmt"
	"os"
	"strings"

	"github.com/jparise/durstr/internal/github"
	"github.com/rs/zerolog"
)

// DefaultPattern selects the files that are checked when no pattern is given.
const DefaultPattern = "**/*.{yaml,yml,json}"

// DefaultKeys are the key path patterns whose values are checked when no
// keys are given.
var DefaultKeys = []string{
	"**/*timeout",
	"**/*interval",
	"**/*ttl",
	"**/*duration",
	"**/*delay",
	"**/*period",
}

// Source is either a local directory or a GitHub repository specification.
type Source struct {
	Dir   string // Local directory (empty for GitHub sources)
	Owner string // Repository owner (user or organization)
	Repo  string // Repository name (empty means expand all repos for owner)
	Ref   string // Branch/tag/SHA (empty means use default branch from API)
}

func (s Source) String() string {
	switch {
	case s.Dir != "":
		return s.Dir
	case s.Repo == "":
		return s.Owner
	case s.Ref != "":
		return s.Owner + "/" + s.Repo + "@" + s.Ref
	default:
		return s.Owner + "/" + s.Repo
	}
}

// ParseSource parses a command-line source. Existing directories are local
// sources; anything else must be "owner", "owner/repo" or "owner/repo@ref".
func ParseSource(spec string) (Source, error) {
	if info, err := os.Stat(spec); err == nil {
		if !info.IsDir() {
			return Source{}, fmt.Errorf("invalid source %s: not a directory", spec)
		}
		return Source{Dir: spec}, nil
	}

	spec, ref, hasRef := strings.Cut(spec, "@")
	if hasRef && ref == "" {
		return Source{}, fmt.Errorf("invalid source %s@: empty ref", spec)
	}

	parts := strings.Split(spec, "/")
	for _, part := range parts {
		if part == "" {
			return Source{}, fmt.Errorf("invalid source: %s (expected a directory, owner, owner/repo or owner/repo@ref)", spec)
		}
	}

	switch len(parts) {
	case 1:
		if hasRef {
			return Source{}, fmt.Errorf("invalid source %s@%s: a ref requires owner/repo", spec, ref)
		}
		return Source{Owner: parts[0]}, nil
	case 2:
		return Source{Owner: parts[0], Repo: parts[1], Ref: ref}, nil
	default:
		return Source{}, fmt.Errorf("invalid source: %s (expected a directory, owner, owner/repo or owner/repo@ref)", spec)
	}
}

// Options contains all check parameters.
type Options struct {
	Sources    []Source
	Pattern    string   // File pattern (doublestar syntax, matched against the full path)
	Excludes   []string // Exclude patterns
	Keys       []string // Key path patterns selecting duration fields
	IgnoreCase bool
	Strict     bool              // Report values that are not in canonical form
	Repos      github.RepoFilter // Repositories included when expanding an owner
	ClientOpts github.ClientOptions
	Jobs       int // Maximum concurrent sources and file reads
	Logger     zerolog.Logger
}
