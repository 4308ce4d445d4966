// Package format implements the core Delphi/Pascal transformation pipeline:
// the spacing context collector, the text spacing transformer, the
// uses-section reformatter, the section rewriters, and the orchestrator
// that composes their output through the edit-merge engine in pkg/fix.
package format

// LineEnding selects the newline sequence used for line breaks newly
// introduced by a rewriter. Untouched source slices keep their original
// line endings regardless of this setting.
type LineEnding string

const (
	LineEndingAuto LineEnding = "auto"
	LineEndingCRLF LineEnding = "crlf"
	LineEndingLF   LineEnding = "lf"
)

// UsesSectionStyle selects the comma layout of a reformatted uses section.
type UsesSectionStyle string

const (
	StyleCommaAtEnd       UsesSectionStyle = "comma_at_end"
	StyleCommaAtBeginning UsesSectionStyle = "comma_at_beginning"
)

// SpaceOperation is the enumerated whitespace policy around a token.
type SpaceOperation string

const (
	SpaceNoChange        SpaceOperation = "no_change"
	SpaceBefore          SpaceOperation = "before"
	SpaceAfter           SpaceOperation = "after"
	SpaceBeforeAndAfter  SpaceOperation = "before_and_after"
)

// UsesSectionOptions configures the uses-section reformatter.
type UsesSectionOptions struct {
	Style            UsesSectionStyle
	PriorityPrefixes []string
	NameRewrites     map[string]string
}

// TransformationToggles enables or disables individual rewriters.
type TransformationToggles struct {
	UsesSection           bool
	UnitProgram           bool
	SingleKeywordSections bool
	ProcedureSection      bool
	InheritedCalls        bool
	Text                  bool
}

// TextChangeOptions configures the text spacing transformer.
type TextChangeOptions struct {
	Lt, Eq, Neq, Gt, Lte, Gte                     SpaceOperation
	Add, Sub, Mul, FDiv                           SpaceOperation
	Assign, AssignAdd, AssignSub, AssignMul, AssignDiv SpaceOperation
	Colon                                         SpaceOperation
	Comma                                         SpaceOperation
	SemiColon                                     SpaceOperation

	ColonNumericException        bool
	SpaceInsideBraceComments     bool
	SpaceInsideParenStarComments bool
	SpaceAfterLineCommentSlashes bool
	TrimTrailingWhitespace       bool
}

// Options bundles every knob the core pipeline consumes, mirroring the
// data model's Options record.
type Options struct {
	Indentation  string
	LineEnding   LineEnding
	UsesSection  UsesSectionOptions
	Transformations TransformationToggles
	TextChanges  TextChangeOptions
}

// DefaultOptions returns the built-in defaults named throughout the data
// model: two-space indentation, auto line endings, comma-at-end uses
// layout, all rewriters enabled, and the default spacing policy (binary
// operators surrounded, semicolon/comma spaced after, colon-numeric
// exception on).
func DefaultOptions() Options {
	return Options{
		Indentation: "  ",
		LineEnding:  LineEndingAuto,
		UsesSection: UsesSectionOptions{
			Style:            StyleCommaAtEnd,
			PriorityPrefixes: nil,
			NameRewrites:     defaultNameRewrites(),
		},
		Transformations: TransformationToggles{
			UsesSection:           true,
			UnitProgram:           true,
			SingleKeywordSections: true,
			ProcedureSection:      true,
			InheritedCalls:        true,
			Text:                  true,
		},
		TextChanges: TextChangeOptions{
			Lt: SpaceBeforeAndAfter, Eq: SpaceNoChange, Neq: SpaceBeforeAndAfter,
			Gt: SpaceBeforeAndAfter, Lte: SpaceBeforeAndAfter, Gte: SpaceBeforeAndAfter,
			Add: SpaceBeforeAndAfter, Sub: SpaceBeforeAndAfter, Mul: SpaceBeforeAndAfter, FDiv: SpaceBeforeAndAfter,
			Assign: SpaceBeforeAndAfter, AssignAdd: SpaceBeforeAndAfter, AssignSub: SpaceBeforeAndAfter,
			AssignMul: SpaceBeforeAndAfter, AssignDiv: SpaceBeforeAndAfter,
			Colon:      SpaceAfter,
			Comma:      SpaceAfter,
			SemiColon:  SpaceAfter,

			ColonNumericException:        true,
			SpaceInsideBraceComments:     false,
			SpaceInsideParenStarComments: false,
			SpaceAfterLineCommentSlashes: false,
			TrimTrailingWhitespace:       true,
		},
	}
}

// defaultNameRewrites seeds the canonical RTL/VCL/FireMonkey short-name
// table: short unit name to qualifying namespace prefix. Not exhaustive,
// but covers the units a formatter encounters routinely.
func defaultNameRewrites() map[string]string {
	return map[string]string{
		"SysUtils": "System", "Classes": "System", "Types": "System", "Math": "System",
		"Variants": "System", "StrUtils": "System", "DateUtils": "System", "IOUtils": "System",
		"Generics.Collections": "System", "Generics.Defaults": "System", "Rtti": "System",
		"TypInfo": "System", "SyncObjs": "System", "Character": "System", "RegularExpressions": "System",
		"JSON": "System", "IniFiles": "System", "Contnrs": "System",

		"Windows": "Winapi", "Messages": "Winapi", "ShellAPI": "Winapi", "ActiveX": "Winapi",
		"CommCtrl": "Winapi", "ShlObj": "Winapi",

		"Forms": "Vcl", "Controls": "Vcl", "Graphics": "Vcl", "Dialogs": "Vcl", "StdCtrls": "Vcl",
		"ExtCtrls": "Vcl", "ComCtrls": "Vcl", "Menus": "Vcl", "ActnList": "Vcl", "Grids": "Vcl",
		"Clipbrd": "Vcl",

		"FMX.Forms": "FMX", "FMX.Controls": "FMX", "FMX.Graphics": "FMX", "FMX.Types": "FMX",
		"FMX.Dialogs": "FMX", "FMX.StdCtrls": "FMX",

		"DB": "Data", "DBClient": "Data", "SqlExpr": "Data", "FMTBcd": "Data", "DBXJSON": "Data",

		"XMLIntf": "Xml", "XMLDoc": "Xml", "XMLDom": "Xml",

		"SoapHTTPClient": "Soap", "InvokeRegistry": "Soap",
	}
}
