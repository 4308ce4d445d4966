// Package config defines the on-disk configuration shape for the Pascal/
// Delphi formatter and converts it to and from pkg/format.Options. These
// types are pure data structures with no dependency on the TOML codec
// itself beyond struct tags.
package config

import "github.com/tuncb/dfixxer/pkg/format"

// UsesSectionConfig mirrors format.UsesSectionOptions for serialization.
type UsesSectionConfig struct {
	Style            string            `toml:"style"`
	PriorityPrefixes []string          `toml:"priority_prefixes"`
	NameRewrites     map[string]string `toml:"name_rewrites"`
}

// TransformationsConfig mirrors format.TransformationToggles.
type TransformationsConfig struct {
	UsesSection           bool `toml:"uses_section"`
	UnitProgram           bool `toml:"unit_program"`
	SingleKeywordSections bool `toml:"single_keyword_sections"`
	ProcedureSection      bool `toml:"procedure_section"`
	InheritedCalls        bool `toml:"inherited_calls"`
	Text                  bool `toml:"text"`
}

// TextChangesConfig mirrors format.TextChangeOptions.
type TextChangesConfig struct {
	Lt  string `toml:"lt"`
	Eq  string `toml:"eq"`
	Neq string `toml:"neq"`
	Gt  string `toml:"gt"`
	Lte string `toml:"lte"`
	Gte string `toml:"gte"`

	Add  string `toml:"add"`
	Sub  string `toml:"sub"`
	Mul  string `toml:"mul"`
	FDiv string `toml:"fdiv"`

	Assign    string `toml:"assign"`
	AssignAdd string `toml:"assign_add"`
	AssignSub string `toml:"assign_sub"`
	AssignMul string `toml:"assign_mul"`
	AssignDiv string `toml:"assign_div"`

	Colon     string `toml:"colon"`
	Comma     string `toml:"comma"`
	SemiColon string `toml:"semicolon"`

	ColonNumericException        bool `toml:"colon_numeric_exception"`
	SpaceInsideBraceComments     bool `toml:"space_inside_brace_comments"`
	SpaceInsideParenStarComments bool `toml:"space_inside_paren_star_comments"`
	SpaceAfterLineCommentSlashes bool `toml:"space_after_line_comment_slashes"`
	TrimTrailingWhitespace       bool `toml:"trim_trailing_whitespace"`
}

// CustomConfigPattern maps a glob, evaluated relative to the directory of
// the config that declares it, to an alternative config path that overrides
// discovery for matching files.
type CustomConfigPattern struct {
	Glob   string `toml:"glob"`
	Config string `toml:"config"`
}

// Config is the on-disk configuration document, named dfixxer.toml by
// discovery. Every field is optional; a zero Config is filled in with
// format.DefaultOptions() before use.
type Config struct {
	Indentation string `toml:"indentation"`
	LineEnding  string `toml:"line_ending"`

	UsesSection     UsesSectionConfig     `toml:"uses_section"`
	Transformations TransformationsConfig `toml:"transformations"`
	TextChanges     TextChangesConfig     `toml:"text_changes"`

	ExcludeFiles         []string              `toml:"exclude_files"`
	CustomConfigPatterns []CustomConfigPattern `toml:"custom_config_patterns"`

	// CLI-level options, never persisted to a config file.
	Jobs      int    `toml:"-"`
	LogLevel  string `toml:"-"`
	Backup    bool   `toml:"-"`
	DryRun    bool   `toml:"-"`
}

// NewConfig returns a Config seeded from format.DefaultOptions(), so an
// empty on-disk file and a missing one behave identically.
func NewConfig() *Config {
	return fromOptions(format.DefaultOptions())
}

// ToOptions converts c into the format.Options the core pipeline consumes,
// treating every empty/zero field as "use the built-in default" rather
// than "use the Go zero value".
func (c *Config) ToOptions() format.Options {
	opts := format.DefaultOptions()
	if c == nil {
		return opts
	}

	if c.Indentation != "" {
		opts.Indentation = c.Indentation
	}
	if c.LineEnding != "" {
		opts.LineEnding = format.LineEnding(c.LineEnding)
	}

	if c.UsesSection.Style != "" {
		opts.UsesSection.Style = format.UsesSectionStyle(c.UsesSection.Style)
	}
	if c.UsesSection.PriorityPrefixes != nil {
		opts.UsesSection.PriorityPrefixes = c.UsesSection.PriorityPrefixes
	}
	if c.UsesSection.NameRewrites != nil {
		opts.UsesSection.NameRewrites = c.UsesSection.NameRewrites
	}

	if !c.transformationsEmpty() {
		opts.Transformations = format.TransformationToggles{
			UsesSection:           c.Transformations.UsesSection,
			UnitProgram:           c.Transformations.UnitProgram,
			SingleKeywordSections: c.Transformations.SingleKeywordSections,
			ProcedureSection:      c.Transformations.ProcedureSection,
			InheritedCalls:        c.Transformations.InheritedCalls,
			Text:                  c.Transformations.Text,
		}
	}

	applySpaceOp(&opts.TextChanges.Lt, c.TextChanges.Lt)
	applySpaceOp(&opts.TextChanges.Eq, c.TextChanges.Eq)
	applySpaceOp(&opts.TextChanges.Neq, c.TextChanges.Neq)
	applySpaceOp(&opts.TextChanges.Gt, c.TextChanges.Gt)
	applySpaceOp(&opts.TextChanges.Lte, c.TextChanges.Lte)
	applySpaceOp(&opts.TextChanges.Gte, c.TextChanges.Gte)
	applySpaceOp(&opts.TextChanges.Add, c.TextChanges.Add)
	applySpaceOp(&opts.TextChanges.Sub, c.TextChanges.Sub)
	applySpaceOp(&opts.TextChanges.Mul, c.TextChanges.Mul)
	applySpaceOp(&opts.TextChanges.FDiv, c.TextChanges.FDiv)
	applySpaceOp(&opts.TextChanges.Assign, c.TextChanges.Assign)
	applySpaceOp(&opts.TextChanges.AssignAdd, c.TextChanges.AssignAdd)
	applySpaceOp(&opts.TextChanges.AssignSub, c.TextChanges.AssignSub)
	applySpaceOp(&opts.TextChanges.AssignMul, c.TextChanges.AssignMul)
	applySpaceOp(&opts.TextChanges.AssignDiv, c.TextChanges.AssignDiv)
	applySpaceOp(&opts.TextChanges.Colon, c.TextChanges.Colon)
	applySpaceOp(&opts.TextChanges.Comma, c.TextChanges.Comma)
	applySpaceOp(&opts.TextChanges.SemiColon, c.TextChanges.SemiColon)

	if !c.textBoolsEmpty() {
		opts.TextChanges.ColonNumericException = c.TextChanges.ColonNumericException
		opts.TextChanges.SpaceInsideBraceComments = c.TextChanges.SpaceInsideBraceComments
		opts.TextChanges.SpaceInsideParenStarComments = c.TextChanges.SpaceInsideParenStarComments
		opts.TextChanges.SpaceAfterLineCommentSlashes = c.TextChanges.SpaceAfterLineCommentSlashes
		opts.TextChanges.TrimTrailingWhitespace = c.TextChanges.TrimTrailingWhitespace
	}

	return opts
}

func applySpaceOp(dst *format.SpaceOperation, raw string) {
	if raw != "" {
		*dst = format.SpaceOperation(raw)
	}
}

func (c *Config) transformationsEmpty() bool {
	t := c.Transformations
	return !t.UsesSection && !t.UnitProgram && !t.SingleKeywordSections &&
		!t.ProcedureSection && !t.InheritedCalls && !t.Text
}

func (c *Config) textBoolsEmpty() bool {
	t := c.TextChanges
	return !t.ColonNumericException && !t.SpaceInsideBraceComments &&
		!t.SpaceInsideParenStarComments && !t.SpaceAfterLineCommentSlashes && !t.TrimTrailingWhitespace
}

// fromOptions builds a fully populated Config from opts, used to seed
// NewConfig.
func fromOptions(opts format.Options) *Config {
	return &Config{
		Indentation: opts.Indentation,
		LineEnding:  string(opts.LineEnding),
		UsesSection: UsesSectionConfig{
			Style:            string(opts.UsesSection.Style),
			PriorityPrefixes: opts.UsesSection.PriorityPrefixes,
			NameRewrites:     opts.UsesSection.NameRewrites,
		},
		Transformations: TransformationsConfig{
			UsesSection:           opts.Transformations.UsesSection,
			UnitProgram:           opts.Transformations.UnitProgram,
			SingleKeywordSections: opts.Transformations.SingleKeywordSections,
			ProcedureSection:      opts.Transformations.ProcedureSection,
			InheritedCalls:        opts.Transformations.InheritedCalls,
			Text:                  opts.Transformations.Text,
		},
		TextChanges: TextChangesConfig{
			Lt: string(opts.TextChanges.Lt), Eq: string(opts.TextChanges.Eq), Neq: string(opts.TextChanges.Neq),
			Gt: string(opts.TextChanges.Gt), Lte: string(opts.TextChanges.Lte), Gte: string(opts.TextChanges.Gte),
			Add: string(opts.TextChanges.Add), Sub: string(opts.TextChanges.Sub),
			Mul: string(opts.TextChanges.Mul), FDiv: string(opts.TextChanges.FDiv),
			Assign: string(opts.TextChanges.Assign), AssignAdd: string(opts.TextChanges.AssignAdd),
			AssignSub: string(opts.TextChanges.AssignSub), AssignMul: string(opts.TextChanges.AssignMul),
			AssignDiv: string(opts.TextChanges.AssignDiv),
			Colon:     string(opts.TextChanges.Colon), Comma: string(opts.TextChanges.Comma), SemiColon: string(opts.TextChanges.SemiColon),

			ColonNumericException:        opts.TextChanges.ColonNumericException,
			SpaceInsideBraceComments:     opts.TextChanges.SpaceInsideBraceComments,
			SpaceInsideParenStarComments: opts.TextChanges.SpaceInsideParenStarComments,
			SpaceAfterLineCommentSlashes: opts.TextChanges.SpaceAfterLineCommentSlashes,
			TrimTrailingWhitespace:       opts.TextChanges.TrimTrailingWhitespace,
		},
	}
}
