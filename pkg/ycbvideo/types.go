package ycbvideo

import (
	"github.com/bft-labs/ycbvideo/internal/domain"
	"github.com/bft-labs/ycbvideo/internal/ports"
	"github.com/bft-labs/ycbvideo/pkg/dataset"
	"github.com/bft-labs/ycbvideo/pkg/log"
)

// Re-export types from internal packages so that callers can name them.
type (
	// Descriptor identifies one frame by sequence and frame identifier.
	Descriptor = domain.Descriptor

	// Frame is one materialized frame.
	Frame = domain.Frame

	// Box is a labelled bounding box of a frame.
	Box = domain.Box

	// FrameSets is the complete/incomplete inventory of one sequence.
	FrameSets = domain.FrameSets

	// Inventory lists the sequences and frames of a dataset.
	Inventory = ports.Inventory

	// FrameLoader materializes frames.
	FrameLoader = ports.FrameLoader

	// Policy decides which files a frame needs to be complete.
	Policy = dataset.Policy

	// Logger is the structured logger used by the loader.
	Logger = log.Logger
)

// Errors returned while resolving and loading frames.
type (
	SequenceUnavailableError = domain.SequenceUnavailableError
	FrameUnavailableError    = domain.FrameUnavailableError
	IncompleteFrameError     = domain.IncompleteFrameError
)

var (
	ErrSequenceNotFound = domain.ErrSequenceNotFound
	ErrFrameNotFound    = domain.ErrFrameNotFound
	ErrIndexOutOfRange  = domain.ErrIndexOutOfRange
	ErrNoExpressions    = domain.ErrNoExpressions
)

// DefaultPolicy requires metadata files everywhere and box files in
// numbered sequences.
func DefaultPolicy() Policy {
	return dataset.DefaultPolicy()
}
