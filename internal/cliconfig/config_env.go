package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (TASKER_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("TASKER_TASK_FILE"), &cfg.TaskFile)
	s.setString("log-level", os.Getenv("TASKER_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("title", os.Getenv("TASKER_REPORT_TITLE"), &cfg.ReportTitle)
	s.setBoolFromString("atomic-write", os.Getenv("TASKER_ATOMIC_WRITE"), &cfg.AtomicWrite)

	if err := s.setDuration("interval", os.Getenv("TASKER_WATCH_INTERVAL"), &cfg.WatchInterval); err != nil {
		return err
	}
	return nil
}
