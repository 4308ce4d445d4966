package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ToTOML serializes the configuration to TOML.
func (c *Config) ToTOML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentSymbol("  ")

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// ToTOMLWithHeader serializes the configuration with a header comment
// prepended (every line of header should already carry a leading "#").
func (c *Config) ToTOMLWithHeader(header string) ([]byte, error) {
	tomlBytes, err := c.ToTOML()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return tomlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(tomlBytes)

	return buf.Bytes(), nil
}

// FromTOML parses a configuration from TOML bytes.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration via a TOML round-trip,
// falling back to a manual deep copy if encoding fails.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	tomlBytes, err := c.ToTOML()
	if err != nil {
		return c.deepCopy()
	}

	clone, err := FromTOML(tomlBytes)
	if err != nil {
		return c.deepCopy()
	}

	c.copyCLIFields(clone)
	return clone
}

func (c *Config) copyCLIFields(target *Config) {
	target.Jobs = c.Jobs
	target.LogLevel = c.LogLevel
	target.Backup = c.Backup
	target.DryRun = c.DryRun
}

// deepCopy creates a manual deep copy, used as a fallback when the TOML
// round-trip fails.
func (c *Config) deepCopy() *Config {
	clone := &Config{
		Indentation:     c.Indentation,
		LineEnding:      c.LineEnding,
		Transformations: c.Transformations,
		TextChanges:     c.TextChanges,
		Jobs:            c.Jobs,
		LogLevel:        c.LogLevel,
		Backup:          c.Backup,
		DryRun:          c.DryRun,
	}

	clone.UsesSection.Style = c.UsesSection.Style
	if c.UsesSection.PriorityPrefixes != nil {
		clone.UsesSection.PriorityPrefixes = append([]string(nil), c.UsesSection.PriorityPrefixes...)
	}
	if c.UsesSection.NameRewrites != nil {
		clone.UsesSection.NameRewrites = make(map[string]string, len(c.UsesSection.NameRewrites))
		for k, v := range c.UsesSection.NameRewrites {
			clone.UsesSection.NameRewrites[k] = v
		}
	}

	if c.ExcludeFiles != nil {
		clone.ExcludeFiles = append([]string(nil), c.ExcludeFiles...)
	}
	if c.CustomConfigPatterns != nil {
		clone.CustomConfigPatterns = append([]CustomConfigPattern(nil), c.CustomConfigPatterns...)
	}

	return clone
}
