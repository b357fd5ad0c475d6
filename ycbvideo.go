// Package ycbvideo gives selective access to the frames of a YCB-Video
// style dataset.
//
// Example usage:
//
//	frames, err := ycbvideo.Open(ctx, "/data/ycbvideo", "1/*", "2/[2,3,5]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < frames.Len(); i++ {
//	    frame, err := frames.At(ctx, i)
//	    ...
//	}
//
// Use package pkg/ycbvideo directly for shuffling, custom completeness
// policies and logging.
package ycbvideo

import (
	"context"

	"github.com/bft-labs/ycbvideo/pkg/ycbvideo"
)

// Loader resolves expressions against one dataset root.
type Loader = ycbvideo.Loader

// FrameSet is an ordered selection of frames, loaded on access.
type FrameSet = ycbvideo.FrameSet

// Descriptor identifies one frame by sequence and frame identifier.
type Descriptor = ycbvideo.Descriptor

// Frame is one materialized frame.
type Frame = ycbvideo.Frame

// New creates a Loader for the dataset at root using the default policy.
func New(root string) (*Loader, error) {
	return ycbvideo.New(ycbvideo.Config{DatasetRoot: root})
}

// Open resolves expressions against the dataset at root in one step.
func Open(ctx context.Context, root string, expressions ...string) (*FrameSet, error) {
	loader, err := New(root)
	if err != nil {
		return nil, err
	}
	return loader.Frames(ctx, expressions, false)
}

// Select returns the descriptors selected by expressions without loading
// any frame.
func Select(ctx context.Context, root string, expressions ...string) ([]Descriptor, error) {
	set, err := Open(ctx, root, expressions...)
	if err != nil {
		return nil, err
	}
	return set.Descriptors(), nil
}
