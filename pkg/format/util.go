package format

import (
	"runtime"

	"github.com/tuncb/dfixxer/pkg/pascal"
)

// resolveNewline picks the newline sequence a rewriter should use for text
// it generates from scratch. LineEndingAuto resolves to the platform
// default: CRLF on Windows, LF elsewhere.
func resolveNewline(snapshot *pascal.FileSnapshot, opts Options) string {
	switch opts.LineEnding {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingLF:
		return "\n"
	default:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	}
}
