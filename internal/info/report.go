package info

import (
	"context"
	"fmt"
	"sort"

	"github.com/bft-labs/ycbvideo/internal/ports"
)

// ExpectedSequenceCount is the number of numbered sequences of the full
// dataset.
const ExpectedSequenceCount = 92

// Report describes the state of a dataset directory.
type Report struct {
	Expected  int        `yaml:"expected"`
	Available []string   `yaml:"available"`
	Missing   []string   `yaml:"missing"`
	Sequences []Sequence `yaml:"sequences"`
}

// Sequence is the report entry of one available sequence.
type Sequence struct {
	Name       string              `yaml:"name"`
	Complete   []string            `yaml:"complete"`
	Incomplete map[string][]string `yaml:"incomplete"`
}

// IncompleteFrames returns the incomplete frame identifiers, sorted.
func (s Sequence) IncompleteFrames() []string {
	frames := make([]string, 0, len(s.Incomplete))
	for frame := range s.Incomplete {
		frames = append(frames, frame)
	}
	sort.Strings(frames)
	return frames
}

// DefaultExpected returns the identifiers of all numbered sequences,
// 0000 to 0091.
func DefaultExpected() []string {
	ids := make([]string, ExpectedSequenceCount)
	for i := range ids {
		ids[i] = fmt.Sprintf("%04d", i)
	}
	return ids
}

// Build inspects every available sequence of inv. Sequences in expected
// that are not available are reported as missing, in the order given.
func Build(ctx context.Context, inv ports.Inventory, expected []string) (Report, error) {
	available, err := inv.Sequences(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list sequences: %w", err)
	}
	available = append([]string(nil), available...)
	sort.Strings(available)

	report := Report{
		Expected:  len(expected),
		Available: available,
		Missing:   []string{},
		Sequences: make([]Sequence, 0, len(available)),
	}

	present := make(map[string]bool, len(available))
	for _, seq := range available {
		present[seq] = true
	}
	for _, seq := range expected {
		if !present[seq] {
			report.Missing = append(report.Missing, seq)
		}
	}

	for _, seq := range available {
		sets, err := inv.FrameSets(ctx, seq)
		if err != nil {
			return Report{}, fmt.Errorf("frame sets of sequence %s: %w", seq, err)
		}
		complete := sets.Complete
		if complete == nil {
			complete = []string{}
		}
		incomplete := sets.Incomplete
		if incomplete == nil {
			incomplete = map[string][]string{}
		}
		report.Sequences = append(report.Sequences, Sequence{
			Name:       seq,
			Complete:   complete,
			Incomplete: incomplete,
		})
	}
	return report, nil
}
