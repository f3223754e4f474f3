package integration_test

import (
	"testing"

	"github.com/renato0307/pitmaster/test/integration/harness"
)

func TestSettingsExample(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "table format (default)",
			args:         []string{"settings"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "poll_interval_seconds")
			},
		},
		{
			name:         "table format explicit",
			args:         []string{"settings", "example", "--format", "table"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "api_url")
				harness.AssertStdoutContains(t, result, "PITMASTER_<SETTING>")
			},
		},
		{
			name:         "json format",
			args:         []string{"settings", "example", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var output struct {
					Format       map[string]any `json:"format"`
					SettingsFile string         `json:"settings_file"`
				}
				harness.AssertValidJSON(t, result, &output)
				if output.SettingsFile == "" {
					t.Error("Expected 'settings_file' field in JSON output")
				}
				if _, ok := output.Format["alarms"]; !ok {
					t.Error("Expected 'alarms' in the example settings")
				}
			},
		},
		{
			name:         "unknown format",
			args:         []string{"settings", "example", "--format", "yaml"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "pitmaster "+harness.BuildVersion)
}

func TestInvalidAPIURLFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--api-url", "not a url", "history")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid api_url")
}
