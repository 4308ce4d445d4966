// Package configloader provides configuration discovery and loading: an
// upward search from the target file's directory for dfixxer.toml, an
// optional per-file redirect through custom_config_patterns, and a final
// CLI-flag overlay, all validated before being handed to pkg/format.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tuncb/dfixxer/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// TargetPath is the file being formatted. Discovery walks upward from
	// its directory. May be empty when no specific file is in scope yet
	// (e.g. init-config), in which case the current working directory is
	// used instead.
	TargetPath string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, upward discovery is skipped entirely.
	ExplicitPath string

	// CLIConfig carries CLI-flag overrides (Jobs, LogLevel, Backup, DryRun,
	// and optionally Indentation/LineEnding). Applied last, after any
	// custom_config_patterns redirect.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the path of the config file actually used, or "" if
	// none was found and built-in defaults apply.
	LoadedFrom string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration for a single target file.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. A custom_config_patterns redirect declared by the discovered config
//  3. The discovered or explicit dfixxer.toml
//  4. Built-in defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	startDir := opts.TargetPath
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	} else {
		startDir = filepath.Dir(startDir)
	}

	path := opts.ExplicitPath
	if path == "" {
		discovered, err := FindProjectConfig(ctx, startDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		path = discovered
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
		result.LoadedFrom = path

		if opts.TargetPath != "" {
			if override := ResolveCustomConfig(cfg, filepath.Dir(path), opts.TargetPath); override != "" {
				overrideCfg, err := loadConfigFile(override)
				if err != nil {
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("custom_config_patterns redirect to %s failed: %v; using %s", override, err, path))
				} else {
					cfg = overrideCfg
					result.LoadedFrom = override
				}
			}
		}
	}

	if opts.CLIConfig != nil {
		cfg = mergeCLI(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	result.Warnings = append(result.Warnings, validation.WarningMessages()...)

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a TOML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from discovery/flags, not untrusted input.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromTOML(content)
	if err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	return cfg, nil
}
