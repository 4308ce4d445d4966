package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tuncb/dfixxer/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "text_changes.lt").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown glob patterns).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// WarningMessages returns the warning messages, formatted for display.
func (r *ValidationResult) WarningMessages() []string {
	messages := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		messages = append(messages, w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	knownLineEndings = map[string]bool{"auto": true, "crlf": true, "lf": true}
	knownUsesStyles  = map[string]bool{"comma_at_end": true, "comma_at_beginning": true}
	knownSpaceOps    = map[string]bool{
		"no_change": true, "before": true, "after": true, "before_and_after": true,
	}
)

// textChangeFields names every TextChangesConfig field that holds a
// SpaceOperation value, paired with its TOML field path for error messages.
func textChangeFields(tc config.TextChangesConfig) map[string]string {
	return map[string]string{
		"text_changes.lt": tc.Lt, "text_changes.eq": tc.Eq, "text_changes.neq": tc.Neq,
		"text_changes.gt": tc.Gt, "text_changes.lte": tc.Lte, "text_changes.gte": tc.Gte,
		"text_changes.add": tc.Add, "text_changes.sub": tc.Sub, "text_changes.mul": tc.Mul,
		"text_changes.fdiv":        tc.FDiv,
		"text_changes.assign":      tc.Assign,
		"text_changes.assign_add":  tc.AssignAdd,
		"text_changes.assign_sub":  tc.AssignSub,
		"text_changes.assign_mul":  tc.AssignMul,
		"text_changes.assign_div":  tc.AssignDiv,
		"text_changes.colon":       tc.Colon,
		"text_changes.comma":       tc.Comma,
		"text_changes.semicolon":   tc.SemiColon,
	}
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.LineEnding != "" && !knownLineEndings[cfg.LineEnding] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "line_ending",
			Value:   cfg.LineEnding,
			Message: fmt.Sprintf("invalid line_ending %q; must be one of: auto, crlf, lf", cfg.LineEnding),
		})
	}

	if cfg.UsesSection.Style != "" && !knownUsesStyles[cfg.UsesSection.Style] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "uses_section.style",
			Value:   cfg.UsesSection.Style,
			Message: fmt.Sprintf("invalid uses_section.style %q; must be one of: comma_at_end, comma_at_beginning", cfg.UsesSection.Style),
		})
	}

	for field, value := range textChangeFields(cfg.TextChanges) {
		if value != "" && !knownSpaceOps[value] {
			result.Errors = append(result.Errors, ValidationError{
				Field: field,
				Value: value,
				Message: fmt.Sprintf(
					"invalid %s %q; must be one of: no_change, before, after, before_and_after", field, value,
				),
			})
		}
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateGlobs(cfg.ExcludeFiles, "exclude_files", result)

	for i, pattern := range cfg.CustomConfigPatterns {
		field := fmt.Sprintf("custom_config_patterns[%d].glob", i)
		if _, err := filepath.Match(pattern.Glob, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   pattern.Glob,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
		if pattern.Config == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("custom_config_patterns[%d].config", i),
				Message: "config path must not be empty",
			})
		}
	}

	return result
}

// validateGlobs checks that every pattern is a syntactically valid glob.
func validateGlobs(patterns []string, fieldPrefix string, result *ValidationResult) {
	for i, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", fieldPrefix, i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidLineEnding returns true if the line ending string is valid.
func IsValidLineEnding(s string) bool {
	return knownLineEndings[s]
}

// IsValidUsesSectionStyle returns true if the uses-section style is valid.
func IsValidUsesSectionStyle(s string) bool {
	return knownUsesStyles[s]
}

// IsValidSpaceOperation returns true if the spacing operation is valid.
func IsValidSpaceOperation(s string) bool {
	return knownSpaceOps[s]
}
