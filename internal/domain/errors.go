package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSequenceNotFound is returned when a sequence does not exist in the
	// dataset.
	ErrSequenceNotFound = errors.New("ycbvideo: sequence not found")

	// ErrFrameNotFound is returned when a frame does not exist in its
	// sequence.
	ErrFrameNotFound = errors.New("ycbvideo: frame not found")

	// ErrIndexOutOfRange is returned for positional access outside a frame
	// set.
	ErrIndexOutOfRange = errors.New("ycbvideo: index out of range")

	// ErrNoExpressions is returned when a selection is requested without any
	// expression.
	ErrNoExpressions = errors.New("ycbvideo: no selection expressions")
)

// SequenceUnavailableError reports that the sequence part of an expression
// could not be resolved against the available sequences.
type SequenceUnavailableError struct {
	Expression string
	Err        error
}

func (e *SequenceUnavailableError) Error() string {
	return fmt.Sprintf("frame sequence is not available (%s): %v", e.Expression, e.Err)
}

func (e *SequenceUnavailableError) Unwrap() error { return e.Err }

// FrameUnavailableError reports that the frame part of an expression could
// not be resolved within a sequence.
type FrameUnavailableError struct {
	Expression string
	Sequence   string
	Err        error
}

func (e *FrameUnavailableError) Error() string {
	return fmt.Sprintf("frame is not available in sequence %s (%s): %v", e.Sequence, e.Expression, e.Err)
}

func (e *FrameUnavailableError) Unwrap() error { return e.Err }

// IncompleteFrameError reports a selected frame that exists but misses
// some of its files.
type IncompleteFrameError struct {
	Expression string
	Sequence   string
	Frame      string
	Missing    []string
}

func (e *IncompleteFrameError) Error() string {
	return fmt.Sprintf("files for frame missing: %s/%s misses [%s]",
		e.Sequence, e.Frame, strings.Join(e.Missing, ", "))
}

// Descriptor returns the descriptor of the incomplete frame.
func (e *IncompleteFrameError) Descriptor() Descriptor {
	return Descriptor{Sequence: e.Sequence, Frame: e.Frame}
}
