package ycbvideo

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
)

// FrameSet is an ordered selection of frames. It holds descriptors only;
// each frame is loaded when it is accessed and is not kept afterwards.
type FrameSet struct {
	descriptors []Descriptor
	loader      FrameLoader
}

func newFrameSet(descriptors []Descriptor, loader FrameLoader) *FrameSet {
	return &FrameSet{descriptors: descriptors, loader: loader}
}

// Len returns the number of selected frames.
func (s *FrameSet) Len() int {
	return len(s.descriptors)
}

// Descriptors returns a copy of the selected descriptors in order.
func (s *FrameSet) Descriptors() []Descriptor {
	return slices.Clone(s.descriptors)
}

// At loads the i-th frame.
func (s *FrameSet) At(ctx context.Context, i int) (Frame, error) {
	if i < 0 || i >= len(s.descriptors) {
		return Frame{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.descriptors))
	}
	return s.loader.LoadFrame(ctx, s.descriptors[i])
}

// Shuffle permutes the descriptors in place.
func (s *FrameSet) Shuffle(r *rand.Rand) {
	r.Shuffle(len(s.descriptors), func(i, j int) {
		s.descriptors[i], s.descriptors[j] = s.descriptors[j], s.descriptors[i]
	})
}

// Iter returns an iterator over the current order of the set. Calling Iter
// again starts a new pass.
func (s *FrameSet) Iter() *FrameIterator {
	return &FrameIterator{descriptors: s.Descriptors(), loader: s.loader}
}

// FrameIterator loads the frames of a FrameSet one at a time.
type FrameIterator struct {
	descriptors []Descriptor
	loader      FrameLoader
	next        int
}

// Next loads the next frame. It returns io.EOF after the last frame. A
// frame that fails to load is still consumed, so the caller may skip it by
// calling Next again.
func (it *FrameIterator) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if it.next >= len(it.descriptors) {
		return Frame{}, io.EOF
	}
	d := it.descriptors[it.next]
	it.next++
	return it.loader.LoadFrame(ctx, d)
}

// Remaining returns the number of frames not yet returned by Next.
func (it *FrameIterator) Remaining() int {
	return len(it.descriptors) - it.next
}
