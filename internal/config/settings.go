package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults used when neither a flag, the environment nor settings.json set a value
const (
	DefaultAPIURL              = "http://localhost:8000"
	DefaultPollIntervalSeconds = 30
	DefaultSSHHost             = "localhost"
	DefaultSSHPort             = 23234
)

// Settings represents the structure of ~/.pitmaster/settings.json
type Settings struct {
	Alarms              *bool  `json:"alarms,omitempty"`
	APIURL              string `json:"api_url,omitempty"`
	Debug               *bool  `json:"debug,omitempty"`
	DetailedMode        *bool  `json:"detailed_mode,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	MetricsAddr         string `json:"metrics_addr,omitempty"`
	PollIntervalSeconds *int   `json:"poll_interval_seconds,omitempty"`
	SSHHost             string `json:"ssh_host,omitempty"`
	SSHPort             *int   `json:"ssh_port,omitempty"`
}

// LoadSettings loads settings from $PITMASTER_HOME/settings.json (or ~/.pitmaster/settings.json if not set)
// and applies PITMASTER_* environment overrides.
// A missing file is not an error.
func LoadSettings() (*Settings, error) {
	settings, err := readSettings(GetSettingsPath())
	if err != nil {
		return nil, err
	}
	if err := settings.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func readSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to $PITMASTER_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", GetHome(), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// applyEnv overrides file values with PITMASTER_* variables. Debug and log
// rotation variables are read by the logging package itself.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PITMASTER_API_URL"); ok && v != "" {
		s.APIURL = v
	}
	if v, ok := lookup("PITMASTER_METRICS_ADDR"); ok {
		s.MetricsAddr = v
	}
	if v, ok := lookup("PITMASTER_SSH_HOST"); ok && v != "" {
		s.SSHHost = v
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"PITMASTER_POLL_INTERVAL_SECONDS", &s.PollIntervalSeconds},
		{"PITMASTER_SSH_PORT", &s.SSHPort},
	}
	for _, e := range ints {
		v, ok := lookup(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.name, err)
		}
		*e.dst = &n
	}

	bools := []struct {
		name string
		dst  **bool
	}{
		{"PITMASTER_ALARMS", &s.Alarms},
		{"PITMASTER_DETAILED_MODE", &s.DetailedMode},
	}
	for _, e := range bools {
		v, ok := lookup(e.name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.name, err)
		}
		*e.dst = &b
	}
	return nil
}

// Validate checks values that would otherwise fail much later
func (s *Settings) Validate() error {
	if s.APIURL != "" {
		u, err := url.Parse(s.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid api_url %q: expected an absolute http(s) URL", s.APIURL)
		}
	}
	if s.PollIntervalSeconds != nil && *s.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll_interval_seconds must be positive, got %d", *s.PollIntervalSeconds)
	}
	if s.SSHPort != nil && (*s.SSHPort <= 0 || *s.SSHPort > 65535) {
		return fmt.Errorf("ssh_port out of range: %d", *s.SSHPort)
	}
	return nil
}

// GetAPIURL returns the prediction service base URL without a trailing slash
func (s *Settings) GetAPIURL() string {
	if s.APIURL == "" {
		return DefaultAPIURL
	}
	return strings.TrimRight(s.APIURL, "/")
}

// GetPollInterval returns the prediction polling period
func (s *Settings) GetPollInterval() time.Duration {
	if s.PollIntervalSeconds == nil {
		return DefaultPollIntervalSeconds * time.Second
	}
	return time.Duration(*s.PollIntervalSeconds) * time.Second
}

// GetSSHAddr returns the listen address of the SSH server
func (s *Settings) GetSSHAddr() string {
	host := s.SSHHost
	if host == "" {
		host = DefaultSSHHost
	}
	port := DefaultSSHPort
	if s.SSHPort != nil {
		port = *s.SSHPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// IsDetailedMode reports whether cooks start in the detailed view
func (s *Settings) IsDetailedMode() bool {
	return s.DetailedMode != nil && *s.DetailedMode
}

// AlarmsEnabled reports whether milestone alarms are played. Defaults to true.
func (s *Settings) AlarmsEnabled() bool {
	return s.Alarms == nil || *s.Alarms
}
