package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				TaskFile:      "/home/me/tasks.json",
				AtomicWrite:   &trueVal,
				LogLevel:      "debug",
				WatchInterval: "1s",
				ReportTitle:   "Sprint 12",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				TaskFile:      "/home/me/tasks.json",
				AtomicWrite:   true,
				LogLevel:      "debug",
				WatchInterval: time.Second,
				ReportTitle:   "Sprint 12",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				TaskFile:    "/config/tasks.json",
				AtomicWrite: &falseVal,
				LogLevel:    "error",
			},
			changed: map[string]bool{"file": true, "atomic-write": true},
			initial: Config{
				TaskFile:    "/flag/tasks.json",
				AtomicWrite: true,
				LogLevel:    "warn",
			},
			expected: Config{
				TaskFile:    "/flag/tasks.json", // unchanged because flag was set
				AtomicWrite: true,
				LogLevel:    "error",
			},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{WatchInterval: "soon"},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
task_file = "/tmp/tasks.json"
atomic_write = true
log_level = "info"
watch_interval = "500ms"
report_title = "Home"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.TaskFile != "/tmp/tasks.json" {
		t.Errorf("TaskFile = %v, want /tmp/tasks.json", fc.TaskFile)
	}
	if fc.AtomicWrite == nil || !*fc.AtomicWrite {
		t.Errorf("AtomicWrite = %v, want true", fc.AtomicWrite)
	}
	if fc.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", fc.LogLevel)
	}
	if fc.WatchInterval != "500ms" {
		t.Errorf("WatchInterval = %v, want 500ms", fc.WatchInterval)
	}
	if fc.ReportTitle != "Home" {
		t.Errorf("ReportTitle = %v, want Home", fc.ReportTitle)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")

	if err := os.WriteFile(configPath, []byte("task_file = \nthis is not valid toml\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.HasSuffix(path, filepath.Join(".tasker", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v, should end in .tasker/config.toml", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
