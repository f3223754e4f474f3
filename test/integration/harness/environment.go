package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own PITMASTER_HOME.
type TestEnvironment struct {
	PitmasterHome string
	extraEnv      map[string]string
	tb            testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp PITMASTER_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		PitmasterHome: tb.TempDir(),
		extraEnv:      make(map[string]string),
		tb:            tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out PITMASTER_* variables and sets:
//   - PITMASTER_HOME to the temp directory
//   - PITMASTER_DEBUG to empty string (disables debug logging)
//   - PITMASTER_ALARMS to false (no sounds)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["PITMASTER_HOME"] = true
	overrideKeys["PITMASTER_DEBUG"] = true
	overrideKeys["PITMASTER_ALARMS"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing PITMASTER_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "PITMASTER_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"PITMASTER_HOME="+e.PitmasterHome,
		"PITMASTER_DEBUG=",
		"PITMASTER_ALARMS=false",
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test journal database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.PitmasterHome, "journal.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// UseAPI points the binary at api.
func (e *TestEnvironment) UseAPI(api *FakeAPI) {
	e.SetEnv("PITMASTER_API_URL", api.URL())
}
