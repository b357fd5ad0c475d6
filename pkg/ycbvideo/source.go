package ycbvideo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// ExpressionPath resolves a relative expression file path against the
// dataset root.
func (l *Loader) ExpressionPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.root, path)
}

// FramesFromFile resolves the expressions stored one per line in the file
// at path. Relative paths are taken relative to the dataset root.
func (l *Loader) FramesFromFile(ctx context.Context, path string, shuffle bool) (*FrameSet, error) {
	path = l.ExpressionPath(path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("expression file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("expression file is not a regular file: %s", path)
	}

	expressions, err := selection.LoadExpressionFile(path)
	if err != nil {
		return nil, err
	}
	return l.Frames(ctx, expressions, shuffle)
}
