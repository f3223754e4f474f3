package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/pitmaster/internal/config"
	"github.com/renato0307/pitmaster/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `name:"api-url" help:"Base URL of the prediction service (overrides settings.json)"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the cook screen (default)" default:"1"`
	History  HistoryCmd  `cmd:"history" help:"List cooks recorded on this machine"`
	Presets  PresetsCmd  `cmd:"presets" help:"List equipment presets"`
	Replay   ReplayCmd   `cmd:"replay" help:"Rebuild a recorded cook from its journal"`
	Report   ReportCmd   `cmd:"report" help:"Show the report of a finished cook"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the cook screen over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings"`
	Watch    WatchCmd    `cmd:"watch" help:"Follow an existing cook without a screen"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// CLI flags > env vars > settings.json > defaults. A flag still at its
	// default yields to the environment and then to the settings file.
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("PITMASTER_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("PITMASTER_DEBUG"); !hasEnv && c.settings.Debug != nil {
			c.Debug = *c.settings.Debug
		}
	}
	if c.APIURL != "" {
		c.settings.APIURL = c.APIURL
		if err := c.settings.Validate(); err != nil {
			return err
		}
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Share the debug settings with anything this process starts
	if c.Debug {
		os.Setenv("PITMASTER_DEBUG", "1")
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("PITMASTER_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM logs go to the file
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("CLI initialized",
		"api_url", c.settings.GetAPIURL(),
		"poll_interval", c.settings.GetPollInterval().String())
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
