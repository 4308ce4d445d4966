package config

import "strings"

// DefaultTemplate renders a fully commented dfixxer.toml reflecting
// NewConfig()'s built-in defaults, one comment line per field naming what
// it controls, so init-config produces a document a user can edit in
// place rather than an opaque blob.
func DefaultTemplate() string {
	var b strings.Builder

	b.WriteString("# dfixxer configuration. Every field below is optional; omitting it keeps\n")
	b.WriteString("# the built-in default shown here.\n\n")

	b.WriteString("# Indentation string used by newly inserted lines (uses-section entries,\n")
	b.WriteString("# moved section keywords).\n")
	b.WriteString("indentation = \"  \"\n\n")

	b.WriteString("# Line ending for newly introduced line breaks: \"auto\", \"crlf\", or \"lf\".\n")
	b.WriteString("# Untouched source keeps its original line endings regardless.\n")
	b.WriteString("line_ending = \"auto\"\n\n")

	b.WriteString("[uses_section]\n")
	b.WriteString("# Comma layout: \"comma_at_end\" or \"comma_at_beginning\".\n")
	b.WriteString("style = \"comma_at_end\"\n")
	b.WriteString("# Units are sorted by their position in this list (dotted prefix match),\n")
	b.WriteString("# then case-insensitively by name. Empty list: sort by name only.\n")
	b.WriteString("priority_prefixes = []\n")
	b.WriteString("# Short unit name to namespace prefix, e.g. SysUtils -> System.SysUtils.\n")
	b.WriteString("# name_rewrites = { SysUtils = \"System\" }\n\n")

	b.WriteString("[transformations]\n")
	b.WriteString("uses_section = true\n")
	b.WriteString("unit_program = true\n")
	b.WriteString("single_keyword_sections = true\n")
	b.WriteString("procedure_section = true\n")
	b.WriteString("inherited_calls = true\n")
	b.WriteString("text = true\n\n")

	b.WriteString("[text_changes]\n")
	b.WriteString("# Spacing policy per token: \"no_change\", \"before\", \"after\", or\n")
	b.WriteString("# \"before_and_after\".\n")
	b.WriteString("lt = \"before_and_after\"\n")
	b.WriteString("eq = \"no_change\"\n")
	b.WriteString("neq = \"before_and_after\"\n")
	b.WriteString("gt = \"before_and_after\"\n")
	b.WriteString("lte = \"before_and_after\"\n")
	b.WriteString("gte = \"before_and_after\"\n")
	b.WriteString("add = \"before_and_after\"\n")
	b.WriteString("sub = \"before_and_after\"\n")
	b.WriteString("mul = \"before_and_after\"\n")
	b.WriteString("fdiv = \"before_and_after\"\n")
	b.WriteString("assign = \"before_and_after\"\n")
	b.WriteString("assign_add = \"before_and_after\"\n")
	b.WriteString("assign_sub = \"before_and_after\"\n")
	b.WriteString("assign_mul = \"before_and_after\"\n")
	b.WriteString("assign_div = \"before_and_after\"\n")
	b.WriteString("colon = \"after\"\n")
	b.WriteString("comma = \"after\"\n")
	b.WriteString("semicolon = \"after\"\n\n")
	b.WriteString("# Exempts a colon between two numeric literals (e.g. 12:30, or the 0:2 in Value:0:2)\n")
	b.WriteString("# from the colon spacing rule above.\n")
	b.WriteString("colon_numeric_exception = true\n")
	b.WriteString("space_inside_brace_comments = false\n")
	b.WriteString("space_inside_paren_star_comments = false\n")
	b.WriteString("space_after_line_comment_slashes = false\n")
	b.WriteString("trim_trailing_whitespace = true\n\n")

	b.WriteString("# Glob patterns (relative to this file's directory) excluded from a\n")
	b.WriteString("# --multi run before any per-file config is loaded.\n")
	b.WriteString("exclude_files = []\n\n")

	b.WriteString("# Route files matching a glob to a different config file, evaluated in\n")
	b.WriteString("# declaration order; first match wins.\n")
	b.WriteString("# [[custom_config_patterns]]\n")
	b.WriteString("# glob = \"vendor/**\"\n")
	b.WriteString("# config = \"vendor/dfixxer.toml\"\n")

	return b.String()
}
