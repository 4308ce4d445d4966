package configloader

import (
	"path/filepath"

	"github.com/tuncb/dfixxer/pkg/config"
	"github.com/tuncb/dfixxer/pkg/globmatch"
)

// ResolveCustomConfig checks cfg's CustomConfigPatterns, in declaration
// order, against targetPath relative to configDir (the directory containing
// the config file that declared cfg). The first matching glob wins; its
// Config path is resolved relative to configDir if not already absolute.
// Returns "" if no pattern matches.
func ResolveCustomConfig(cfg *config.Config, configDir, targetPath string) string {
	if cfg == nil || len(cfg.CustomConfigPatterns) == 0 {
		return ""
	}

	relPath, err := filepath.Rel(configDir, targetPath)
	if err != nil {
		relPath = targetPath
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range cfg.CustomConfigPatterns {
		if globmatch.Match(relPath, pattern.Glob) {
			if filepath.IsAbs(pattern.Config) {
				return pattern.Config
			}
			return filepath.Join(configDir, pattern.Config)
		}
	}
	return ""
}

// IsExcluded reports whether targetPath, relative to baseDir, matches any of
// the given exclude glob patterns.
func IsExcluded(baseDir, targetPath string, excludeGlobs []string) bool {
	relPath, err := filepath.Rel(baseDir, targetPath)
	if err != nil {
		relPath = targetPath
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range excludeGlobs {
		if globmatch.Match(relPath, pattern) {
			return true
		}
	}
	return false
}
