package cli

import "github.com/tuncb/dfixxer/pkg/runner"

// Exit codes for dfixxer: check's exit code counts replacements; every
// other command exits 0 on success, 1 on error.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitError indicates the run failed (I/O, config, or parse failure).
	ExitError = 1

	// maxCheckExitCode caps check's replacement-count exit code at the
	// largest value a process exit status can portably carry.
	maxCheckExitCode = 255
)

// CheckExitCode returns check's exit code: 0 when no replacements would be
// made, otherwise the total replacement count across every processed file,
// clamped to a valid process exit status.
func CheckExitCode(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.ReplacementsTotal > maxCheckExitCode {
		return maxCheckExitCode
	}
	return result.Stats.ReplacementsTotal
}
