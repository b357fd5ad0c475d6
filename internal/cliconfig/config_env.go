package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (YCBVIDEO_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dataset", os.Getenv("YCBVIDEO_DATASET"), &cfg.DatasetRoot)
	s.setString("file", os.Getenv("YCBVIDEO_SELECTION_FILE"), &cfg.SelectionFile)
	s.setString("format", os.Getenv("YCBVIDEO_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("YCBVIDEO_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("verbose", os.Getenv("YCBVIDEO_VERBOSITY"), &cfg.Verbosity); err != nil {
		return err
	}
	if err := s.setInt64FromString("seed", os.Getenv("YCBVIDEO_SEED"), &cfg.Seed); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("YCBVIDEO_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("shuffle", os.Getenv("YCBVIDEO_SHUFFLE"), &cfg.Shuffle)
	s.setBoolFromString("require-meta", os.Getenv("YCBVIDEO_REQUIRE_META"), &cfg.RequireMeta)
	s.setBoolFromString("require-syn-boxes", os.Getenv("YCBVIDEO_REQUIRE_SYN_BOXES"), &cfg.RequireSynBoxes)

	return nil
}
