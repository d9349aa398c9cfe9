package checker

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

func filterByPattern(paths []string, pattern string, ignoreCase bool) ([]string, error) {
	if ignoreCase {
		pattern = strings.ToLower(pattern)
	}

	var filtered []string
	for _, path := range paths {
		matchPath := path
		if ignoreCase {
			matchPath = strings.ToLower(matchPath)
		}

		matched, err := doublestar.Match(pattern, matchPath)
		if err != nil {
			return nil, fmt.Errorf("pattern %q failed to match path %q: %w", pattern, path, err)
		}

		if matched {
			filtered = append(filtered, path)
		}
	}

	return filtered, nil
}

func filterByExcludes(paths []string, excludes []string, ignoreCase bool) ([]string, error) {
	if len(excludes) == 0 {
		return paths, nil
	}

	if ignoreCase {
		normalized := make([]string, len(excludes))
		for i, exclude := range excludes {
			normalized[i] = strings.ToLower(exclude)
		}
		excludes = normalized
	}

	var filtered []string
	for _, path := range paths {
		matchPath := path
		if ignoreCase {
			matchPath = strings.ToLower(matchPath)
		}

		excluded := false
		for _, excludePattern := range excludes {
			isExcluded, err := doublestar.Match(excludePattern, matchPath)
			if err != nil {
				return nil, fmt.Errorf("exclude pattern %q failed to match path %q: %w",
					excludePattern, path, err)
			}
			if isExcluded {
				excluded = true
				break
			}
		}

		if !excluded {
			filtered = append(filtered, path)
		}
	}

	return filtered, nil
}
