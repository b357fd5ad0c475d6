package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"YCBVIDEO_DATASET":  "/env/data",
				"YCBVIDEO_DEBOUNCE": "1m",
				"YCBVIDEO_SHUFFLE":  "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				DatasetRoot: "/env/data",
				Debounce:    time.Minute,
				Shuffle:     true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"YCBVIDEO_DATASET": "/env/data",
				"YCBVIDEO_FORMAT":  "yaml",
			},
			changed: map[string]bool{"dataset": true},
			initial: Config{
				DatasetRoot: "/flag/data",
			},
			expected: Config{
				DatasetRoot: "/flag/data",
				Format:      "yaml",
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"YCBVIDEO_DEBOUNCE": "not-a-duration",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"YCBVIDEO_VERBOSITY": "loud",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "returns error for invalid seed",
			envVars: map[string]string{
				"YCBVIDEO_SEED": "0x2a",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
		{
			name: "seed zero is applied",
			envVars: map[string]string{
				"YCBVIDEO_SEED": "0",
			},
			changed:  map[string]bool{},
			initial:  Config{Seed: -1},
			expected: Config{Seed: 0},
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"YCBVIDEO_REQUIRE_SYN_BOXES": "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				RequireSynBoxes: true,
			},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"YCBVIDEO_REQUIRE_META": "false",
			},
			changed: map[string]bool{},
			initial: Config{RequireMeta: true},
			expected: Config{
				RequireMeta: false,
			},
		},
		{
			name: "handles all field types correctly",
			envVars: map[string]string{
				"YCBVIDEO_DATASET":           "/data",
				"YCBVIDEO_SELECTION_FILE":    "sel.txt",
				"YCBVIDEO_FORMAT":            "yaml",
				"YCBVIDEO_LOG_LEVEL":         "warn",
				"YCBVIDEO_VERBOSITY":         "2",
				"YCBVIDEO_SEED":              "7",
				"YCBVIDEO_DEBOUNCE":          "50ms",
				"YCBVIDEO_SHUFFLE":           "1",
				"YCBVIDEO_REQUIRE_META":      "true",
				"YCBVIDEO_REQUIRE_SYN_BOXES": "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				DatasetRoot:     "/data",
				SelectionFile:   "sel.txt",
				Format:          "yaml",
				LogLevel:        "warn",
				Verbosity:       2,
				Seed:            7,
				Debounce:        50 * time.Millisecond,
				Shuffle:         true,
				RequireMeta:     true,
				RequireSynBoxes: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	// Setup file config
	fileConf := FileConfig{
		DatasetRoot:   "/file/data",
		SelectionFile: "file.txt",
		Shuffle:       &trueVal,
	}

	// Setup env vars
	t.Setenv("YCBVIDEO_DATASET", "/env/data")
	t.Setenv("YCBVIDEO_SELECTION_FILE", "env.txt")
	t.Setenv("YCBVIDEO_FORMAT", "yaml")

	// Simulate CLI flags
	changed := map[string]bool{
		"dataset": true,
	}

	cfg := Config{
		DatasetRoot: "/cli/data", // This should remain (CLI wins)
	}

	// Apply file config
	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}

	// Apply env config
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	// Verify precedence: CLI > Env > File
	if cfg.DatasetRoot != "/cli/data" {
		t.Errorf("DatasetRoot = %v, want /cli/data (CLI should win)", cfg.DatasetRoot)
	}
	if cfg.SelectionFile != "env.txt" {
		t.Errorf("SelectionFile = %v, want env.txt (env should override file)", cfg.SelectionFile)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Format = %v, want yaml (env should set)", cfg.Format)
	}
	if cfg.Shuffle != true {
		t.Errorf("Shuffle = %v, want true (file should set)", cfg.Shuffle)
	}
}
