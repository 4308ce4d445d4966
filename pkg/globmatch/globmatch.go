// Package globmatch implements glob-pattern matching against slash-separated
// relative paths, shared by pkg/runner's discovery walk and
// internal/configloader's exclude_files/custom_config_patterns resolution.
package globmatch

import (
	"path/filepath"
	"strings"
)

// Match reports whether path matches pattern. Supports simple filepath.Match
// syntax ("*.pas", "vendor/file.pas") plus "**" for recursive matching
// ("vendor/**", "**/vendor", "**/vendor/**").
func Match(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	matched, err := filepath.Match(pattern, path)
	if err != nil {
		return false
	}
	if matched {
		return true
	}

	matched, err = filepath.Match(pattern, filepath.Base(path))
	if err != nil {
		return false
	}
	return matched
}

// matchDoubleStar handles patterns containing "**".
func matchDoubleStar(path, pattern string) bool {
	parts := strings.Split(pattern, "**")

	if len(parts) == 1 {
		matched, err := filepath.Match(pattern, path)
		if err != nil {
			return false
		}
		return matched
	}

	if parts[0] == "" && len(parts) == 2 {
		// "**/foo" - matches foo anywhere.
		suffix := strings.TrimPrefix(parts[1], "/")
		if suffix == "" {
			return true
		}

		if strings.HasSuffix(path, suffix) {
			return true
		}

		pathParts := strings.Split(path, "/")
		for _, part := range pathParts {
			matched, err := filepath.Match(suffix, part)
			if err == nil && matched {
				return true
			}
		}

		return strings.Contains(path, suffix)
	}

	if parts[1] == "" || parts[1] == "/" {
		// "foo/**" - matches anything under foo.
		prefix := strings.TrimSuffix(parts[0], "/")
		if prefix == "" {
			return true
		}
		return strings.HasPrefix(path, prefix+"/") || path == prefix
	}

	// "**" in the middle: check prefix/suffix independently.
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" && !strings.HasPrefix(path, prefix) {
		return false
	}

	if suffix != "" && !strings.HasSuffix(path, suffix) {
		matched, err := filepath.Match(suffix, filepath.Base(path))
		if err != nil || !matched {
			return false
		}
	}

	return true
}
