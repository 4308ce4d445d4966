package configloader

import "github.com/tuncb/dfixxer/pkg/config"

// mergeCLI layers CLI-sourced overrides onto a file-loaded configuration.
// Only the CLI-only fields (Jobs, LogLevel, Backup, DryRun) and a handful of
// flags that double as file settings (LineEnding, Indentation) are eligible;
// the CLI never carries a zero-value-means-unset ambiguity because each
// flag's presence is tracked by cobra, not by this merge.
func mergeCLI(base *config.Config, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Indentation != "" {
		result.Indentation = override.Indentation
	}
	if override.LineEnding != "" {
		result.LineEnding = override.LineEnding
	}

	result.Jobs = override.Jobs
	result.LogLevel = override.LogLevel
	result.Backup = override.Backup
	result.DryRun = override.DryRun

	return &result
}
