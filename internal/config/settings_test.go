package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PITMASTER_HOME", t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, s.GetAPIURL())
	assert.Equal(t, 30*time.Second, s.GetPollInterval())
	assert.Equal(t, "localhost:23234", s.GetSSHAddr())
	assert.False(t, s.IsDetailedMode())
	assert.True(t, s.AlarmsEnabled())
}

func TestLoadSettings_FileThenEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PITMASTER_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{
		"api_url": "http://pit.local:8000/",
		"poll_interval_seconds": 10,
		"detailed_mode": true,
		"ssh_port": 2222
	}`), 0644))
	t.Setenv("PITMASTER_POLL_INTERVAL_SECONDS", "5")
	t.Setenv("PITMASTER_ALARMS", "false")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "http://pit.local:8000", s.GetAPIURL())
	assert.Equal(t, 5*time.Second, s.GetPollInterval(), "env wins over the file")
	assert.True(t, s.IsDetailedMode())
	assert.Equal(t, "localhost:2222", s.GetSSHAddr())
	assert.False(t, s.AlarmsEnabled())
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "malformed json",
			file:    `{"api_url":`,
			wantErr: "invalid settings.json",
		},
		{
			name:    "relative url",
			file:    `{"api_url":"pit.local"}`,
			wantErr: "invalid api_url",
		},
		{
			name:    "zero interval",
			file:    `{"poll_interval_seconds":0}`,
			wantErr: "poll_interval_seconds must be positive",
		},
		{
			name:    "bad env int",
			file:    `{}`,
			env:     map[string]string{"PITMASTER_SSH_PORT": "ssh"},
			wantErr: "invalid PITMASTER_SSH_PORT",
		},
		{
			name:    "bad env bool",
			file:    `{}`,
			env:     map[string]string{"PITMASTER_DETAILED_MODE": "sometimes"},
			wantErr: "invalid PITMASTER_DETAILED_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("PITMASTER_HOME", home)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(tt.file), 0644))

			_, err := LoadSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("PITMASTER_HOME", filepath.Join(t.TempDir(), "nested"))

	port := 2022
	require.NoError(t, SaveSettings(&Settings{APIURL: "https://pit.example.com", SSHPort: &port}))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://pit.example.com", s.GetAPIURL())
	assert.Equal(t, "localhost:2022", s.GetSSHAddr())
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"api_url", "debug", "detailed_mode", "max_log_files",
		"metrics_addr", "poll_interval_seconds", "ssh_host", "ssh_port",
	} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultAPIURL, example["api_url"])
	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
}

func TestPaths(t *testing.T) {
	t.Setenv("PITMASTER_HOME", "/srv/pit")

	assert.Equal(t, "/srv/pit", GetHome())
	assert.Equal(t, "/srv/pit/journal.db", GetDBPath())
	assert.Equal(t, "/srv/pit/settings.json", GetSettingsPath())
	assert.Equal(t, "/srv/pit/pitmaster.lock", GetLockPath())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, ".pitmaster"), ExpandPath("~/.pitmaster"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
