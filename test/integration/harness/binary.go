package harness

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// BuildVersion is stamped into the test binary through ldflags
	BuildVersion = "integration"
)

var (
	binaryPath string
	buildErr   error
	buildOnce  sync.Once
)

// CommandResult holds the outcome of one pitmaster invocation. ExitCode is -1
// when the command timed out or could not be started.
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles the pitmaster binary once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		binaryPath, buildErr = build()
	})
	return binaryPath, buildErr
}

func build() (string, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return "", err
	}
	tempDir, err := os.MkdirTemp("", "pitmaster-integration-test-*")
	if err != nil {
		return "", err
	}

	out := filepath.Join(tempDir, "pitmaster")
	ldflags := "-X github.com/renato0307/pitmaster/version.Version=" + BuildVersion
	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", out, ".")
	cmd.Dir = projectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out, nil
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to cleanup binary directory: %v", err)
	}
}

// RunCommand runs pitmaster with args in env using the default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout runs pitmaster with args in env and kills it after
// timeout. Output written before the kill is still returned.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("Command timed out after %v: pitmaster %v", timeout, args)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("Command execution error: %v", err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// findProjectRoot asks the go tool for the module root directory.
func findProjectRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
