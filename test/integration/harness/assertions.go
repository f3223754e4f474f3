package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure verifies the command exited with any non-zero code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected failure (non-zero exit), got success.\nStdout: %s",
		result.Stdout)
}

// AssertExitCode verifies the command exited with a specific code.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"Expected exit code %d, got %d.\nStdout: %s\nStderr: %s",
		expected, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertStdoutContains verifies stdout contains each expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected ...string) {
	tb.Helper()
	for _, e := range expected {
		assert.Contains(tb, result.Stdout, e,
			"Expected stdout to contain %q.\nActual stdout: %s", e, result.Stdout)
	}
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"Expected stderr to contain %q.\nActual stderr: %s", expected, result.Stderr)
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"Expected valid JSON.\nStdout: %s", result.Stdout)
}

// AssertJSONArrayLen verifies stdout is a JSON array of n elements.
// A JSON null counts as an empty array.
func AssertJSONArrayLen(tb testing.TB, result CommandResult, n int) {
	tb.Helper()
	var items []json.RawMessage
	AssertValidJSON(tb, result, &items)
	assert.Len(tb, items, n, "Stdout: %s", result.Stdout)
}
