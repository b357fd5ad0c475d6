package domain

import (
	"image"
	"sort"
)

// Descriptor identifies exactly one frame. It is a value and never changes
// once produced.
type Descriptor struct {
	Sequence string `json:"sequence" yaml:"sequence"`
	Frame    string `json:"frame" yaml:"frame"`
}

// String renders the descriptor as "<sequence>/<frame>".
func (d Descriptor) String() string {
	return d.Sequence + "/" + d.Frame
}

// Box is a labelled, axis-aligned bounding box given by two corners.
type Box struct {
	Label string
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
}

// Frame is one materialized frame.
type Frame struct {
	Color image.Image
	Depth image.Image
	Label image.Image

	// Boxes is nil for sequences without box files.
	Boxes []Box

	// Meta holds the raw bytes of the metadata file, nil when the file is
	// absent and the completeness policy allows that.
	Meta []byte

	Descriptor Descriptor
}

// FrameSets is the inventory of one sequence: frames with every expected
// file, and frames with the kinds of files they miss. The two never
// overlap.
type FrameSets struct {
	Complete   []string
	Incomplete map[string][]string
}

// Available returns complete and incomplete frames, sorted ascending.
func (s FrameSets) Available() []string {
	all := make([]string, 0, len(s.Complete)+len(s.Incomplete))
	all = append(all, s.Complete...)
	for frame := range s.Incomplete {
		all = append(all, frame)
	}
	sort.Strings(all)
	return all
}

// Missing returns the missing file kinds of frame and whether it is
// incomplete.
func (s FrameSets) Missing(frame string) ([]string, bool) {
	kinds, ok := s.Incomplete[frame]
	return kinds, ok
}
