package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != FormatText {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if cfg.Seed != -1 {
		t.Errorf("Seed = %v, want -1", cfg.Seed)
	}
	if !cfg.RequireMeta {
		t.Error("RequireMeta = false, want true")
	}
	if cfg.RequireSynBoxes {
		t.Error("RequireSynBoxes = true, want false")
	}
	if cfg.Debounce != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", cfg.Debounce)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.DatasetRoot = "/data/ycbvideo"
		return cfg
	}

	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErr    bool
		wantFormat string
	}{
		{
			name:   "valid minimal config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing dataset root",
			mutate:  func(c *Config) { c.DatasetRoot = "" },
			wantErr: true,
		},
		{
			name:       "empty format defaults to text",
			mutate:     func(c *Config) { c.Format = "" },
			wantFormat: FormatText,
		},
		{
			name:       "yaml format",
			mutate:     func(c *Config) { c.Format = FormatYAML },
			wantFormat: FormatYAML,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "json" },
			wantErr: true,
		},
		{
			name:    "negative verbosity",
			mutate:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "invalid debounce",
			mutate:  func(c *Config) { c.Debounce = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.wantFormat != "" && cfg.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", cfg.Format, tt.wantFormat)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	defer SetLogLevel("info")

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("SetLogLevel(debug) error = %v", err)
	}
	if got := Logger().GetLevel().String(); got != "debug" {
		t.Errorf("level = %v, want debug", got)
	}
	if err := SetLogLevel("nope"); err == nil {
		t.Error("SetLogLevel(nope) expected error")
	}
}
