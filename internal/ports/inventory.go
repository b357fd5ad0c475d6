package ports

import (
	"context"

	"github.com/bft-labs/ycbvideo/internal/domain"
)

// Inventory provides the identifiers present in a dataset.
type Inventory interface {
	// Sequences returns the available sequence identifiers, in no
	// particular order.
	Sequences(ctx context.Context) ([]string, error)

	// FrameSets returns the complete and incomplete frames of a sequence.
	FrameSets(ctx context.Context, sequence string) (domain.FrameSets, error)
}

// FrameLoader materializes frames. LoadFrame fails with an I/O error when an
// expected file is absent or unreadable, and with a format error when a box
// or metadata file is malformed.
type FrameLoader interface {
	LoadFrame(ctx context.Context, d domain.Descriptor) (domain.Frame, error)
}
