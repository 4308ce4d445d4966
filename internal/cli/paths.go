package cli

import (
	"fmt"
	"path/filepath"
	"sort"
)

// expandPaths resolves the filename arguments a command was invoked with.
// Without --multi each argument is a literal path, passed through unchanged
// (the runner reports a clear per-file error if it does not exist). With
// --multi, each argument is treated as a glob pattern or a directory: glob
// metacharacters are expanded here so a quoted pattern like "src/*.pas"
// works the same on every platform; a plain path that is not a glob (a
// single file, or a directory the runner will walk) passes through as-is.
func expandPaths(args []string, multi bool) ([]string, error) {
	if !multi {
		return args, nil
	}

	seen := make(map[string]struct{})
	var expanded []string

	for _, arg := range args {
		if !hasGlobMeta(arg) {
			if _, ok := seen[arg]; !ok {
				seen[arg] = struct{}{}
				expanded = append(expanded, arg)
			}
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files found matching pattern: %s", arg)
		}
		for _, m := range matches {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				expanded = append(expanded, m)
			}
		}
	}

	sort.Strings(expanded)
	return expanded, nil
}

// hasGlobMeta reports whether pattern contains a filepath.Match metacharacter.
func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '\\':
			return true
		}
	}
	return false
}
