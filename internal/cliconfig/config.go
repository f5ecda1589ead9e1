package cliconfig

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTaskFile is the task file used when none is configured.
const DefaultTaskFile = "task_list.json"

// Config holds CLI configuration for tasker.
type Config struct {
	TaskFile    string
	AtomicWrite bool
	LogLevel    string

	WatchInterval time.Duration
	ReportTitle   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TaskFile:      DefaultTaskFile,
		LogLevel:      "warn",
		WatchInterval: 250 * time.Millisecond,
		ReportTitle:   "Tasks",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.TaskFile == "" {
		return fmt.Errorf("task file is required")
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch interval must be positive")
	}
	if c.ReportTitle == "" {
		c.ReportTitle = "Tasks"
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
