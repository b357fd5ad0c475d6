package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	DatasetRoot     string `toml:"dataset_root"`
	SelectionFile   string `toml:"selection_file"`
	Format          string `toml:"format"`
	Verbosity       int    `toml:"verbosity"`
	LogLevel        string `toml:"log_level"`
	Shuffle         *bool  `toml:"shuffle"`
	Seed            *int64 `toml:"seed"`
	RequireMeta     *bool  `toml:"require_meta"`
	RequireSynBoxes *bool  `toml:"require_syn_boxes"`
	Debounce        string `toml:"debounce"`
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

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.ycbvideo/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ycbvideo", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dataset", fc.DatasetRoot, &cfg.DatasetRoot)
	s.setString("file", fc.SelectionFile, &cfg.SelectionFile)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("verbose", fc.Verbosity, &cfg.Verbosity)
	s.setInt64("seed", fc.Seed, &cfg.Seed)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("shuffle", fc.Shuffle, &cfg.Shuffle)
	s.setBool("require-meta", fc.RequireMeta, &cfg.RequireMeta)
	s.setBool("require-syn-boxes", fc.RequireSynBoxes, &cfg.RequireSynBoxes)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
