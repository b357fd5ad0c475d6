package dataset

import "github.com/bft-labs/ycbvideo/pkg/selection"

// File kinds of a frame.
const (
	KindColor = "color"
	KindDepth = "depth"
	KindLabel = "label"
	KindMeta  = "meta"
	KindBox   = "box"
)

// Policy decides which files a frame needs to be complete.
type Policy struct {
	// RequireMeta makes the metadata file mandatory.
	RequireMeta bool

	// RequireSyntheticBoxes makes box files mandatory in the synthetic
	// sequence. Numbered sequences always need them.
	RequireSyntheticBoxes bool
}

// DefaultPolicy requires metadata everywhere and box files only in
// numbered sequences.
func DefaultPolicy() Policy {
	return Policy{RequireMeta: true}
}

// ExpectedKinds returns the file kinds a frame of sequence must have, in
// the order they are reported when missing.
func (p Policy) ExpectedKinds(sequence string) []string {
	kinds := []string{KindColor, KindDepth, KindLabel}
	if p.RequireMeta {
		kinds = append(kinds, KindMeta)
	}
	if p.expectsBoxes(sequence) {
		kinds = append(kinds, KindBox)
	}
	return kinds
}

func (p Policy) expectsBoxes(sequence string) bool {
	return sequence != selection.DataSyn || p.RequireSyntheticBoxes
}

// FileName returns the file name of one kind of file of a frame.
func FileName(frame, kind string) string {
	ext := ".png"
	switch kind {
	case KindBox:
		ext = ".txt"
	case KindMeta:
		ext = ".mat"
	}
	return frame + "-" + kind + ext
}
