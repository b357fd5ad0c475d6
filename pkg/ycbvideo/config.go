package ycbvideo

import (
	"errors"
	"fmt"
	"os"
)

// ErrInvalidDatasetRoot is returned by New when the dataset root is missing
// or not a directory.
var ErrInvalidDatasetRoot = errors.New("ycbvideo: invalid dataset root")

// Config holds the configuration of a Loader.
type Config struct {
	// DatasetRoot is the directory containing data/ and, optionally,
	// data_syn/.
	DatasetRoot string
}

// Validate checks that the dataset root is an existing directory.
func (c Config) Validate() error {
	if c.DatasetRoot == "" {
		return fmt.Errorf("%w: dataset root is required", ErrInvalidDatasetRoot)
	}
	info, err := os.Stat(c.DatasetRoot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDatasetRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: path is not a directory: %s", ErrInvalidDatasetRoot, c.DatasetRoot)
	}
	return nil
}
