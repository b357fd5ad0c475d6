package ycbvideo

import (
	"context"
	"fmt"
	"sort"
)

type fakeInventory struct {
	sets map[string]FrameSets
}

func (f *fakeInventory) Sequences(context.Context) ([]string, error) {
	out := make([]string, 0, len(f.sets))
	for seq := range f.sets {
		out = append(out, seq)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeInventory) FrameSets(_ context.Context, sequence string) (FrameSets, error) {
	sets, ok := f.sets[sequence]
	if !ok {
		return FrameSets{}, fmt.Errorf("%s: %w", sequence, ErrSequenceNotFound)
	}
	return sets, nil
}

// countingLoader records every load and fails for descriptors in fail.
type countingLoader struct {
	loaded []Descriptor
	fail   map[Descriptor]error
}

func (c *countingLoader) LoadFrame(_ context.Context, d Descriptor) (Frame, error) {
	c.loaded = append(c.loaded, d)
	if err := c.fail[d]; err != nil {
		return Frame{}, err
	}
	return Frame{Descriptor: d}, nil
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{sets: map[string]FrameSets{
		"0000":     {Complete: []string{"000001"}},
		"0001":     {Complete: []string{"000001", "000002", "000003", "000004", "000005"}},
		"0002":     {Complete: []string{"000002", "000003", "000005"}},
		"data_syn": {Complete: []string{"000001"}},
	}}
}
