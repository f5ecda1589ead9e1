package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	TaskFile      string `toml:"task_file"`
	AtomicWrite   *bool  `toml:"atomic_write"`
	LogLevel      string `toml:"log_level"`
	WatchInterval string `toml:"watch_interval"`
	ReportTitle   string `toml:"report_title"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.tasker/config.toml, or "" if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tasker", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", fc.TaskFile, &cfg.TaskFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("title", fc.ReportTitle, &cfg.ReportTitle)
	s.setBool("atomic-write", fc.AtomicWrite, &cfg.AtomicWrite)

	if err := s.setDuration("interval", fc.WatchInterval, &cfg.WatchInterval); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
