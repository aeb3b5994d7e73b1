package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("Default().PageSize = %d, want %d", cfg.PageSize, DefaultPageSize)
	}
	if cfg.ApproachingWindowDays != DefaultApproachingWindowDays {
		t.Errorf("Default().ApproachingWindowDays = %d, want %d", cfg.ApproachingWindowDays, DefaultApproachingWindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "page_size: 25\napproaching_window_days: 7\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.PageSize)
	}
	if cfg.ApproachingWindowDays != 7 {
		t.Errorf("ApproachingWindowDays = %d, want 7", cfg.ApproachingWindowDays)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "page_size: 25\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ApproachingWindowDays != DefaultApproachingWindowDays {
		t.Errorf("omitted window should default, got %d", cfg.ApproachingWindowDays)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "page_size: [not a number\n"},
		{"negative page size", "page_size: -1\n"},
		{"negative window", "approaching_window_days: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
