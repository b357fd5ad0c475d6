package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bft-labs/ycbvideo/internal/domain"
	"github.com/bft-labs/ycbvideo/internal/ports"
	"github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// Directory names below the dataset root.
const (
	DataDir    = "data"
	DataSynDir = "data_syn"
)

var filePattern = regexp.MustCompile(`^([0-9]{6})-([a-z]+)\.(png|txt|mat)$`)

// Inventory lists sequences and frames of a dataset directory. Every call
// reads the directories again; nothing is cached.
type Inventory struct {
	root   string
	policy Policy
	logger log.Logger
}

// NewInventory creates an inventory of the dataset at root.
func NewInventory(root string, policy Policy, logger log.Logger) *Inventory {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Inventory{root: root, policy: policy, logger: logger}
}

// Root returns the dataset root directory.
func (i *Inventory) Root() string {
	return i.root
}

// Policy returns the completeness policy.
func (i *Inventory) Policy() Policy {
	return i.policy
}

// Sequences returns the sequence directories under data/, plus data_syn
// when present. The order is that of the directory listing.
func (i *Inventory) Sequences(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dataDir := filepath.Join(i.root, DataDir)
	ents, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nPlease verify:\n  - The dataset root points to the correct directory\n  - The directory contains a %q directory", err, DataDir)
	}

	sequences := make([]string, 0, len(ents)+1)
	for _, e := range ents {
		if e.IsDir() {
			sequences = append(sequences, e.Name())
		}
	}

	if isDir(filepath.Join(i.root, DataSynDir)) {
		sequences = append(sequences, selection.DataSyn)
	}
	return sequences, nil
}

// SequenceDir returns the directory holding the files of sequence.
func (i *Inventory) SequenceDir(sequence string) string {
	return sequenceDir(i.root, sequence)
}

// FrameSets lists the directory of sequence and classifies its frames.
func (i *Inventory) FrameSets(ctx context.Context, sequence string) (domain.FrameSets, error) {
	if err := ctx.Err(); err != nil {
		return domain.FrameSets{}, err
	}
	if !validSequenceName(sequence) {
		return domain.FrameSets{}, fmt.Errorf("%q: %w", sequence, domain.ErrSequenceNotFound)
	}

	dir := i.SequenceDir(sequence)
	ents, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.FrameSets{}, fmt.Errorf("%s (%s): %w", sequence, dir, domain.ErrSequenceNotFound)
		}
		return domain.FrameSets{}, err
	}

	kinds := make(map[string]map[string]bool)
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		m := filePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		frame, kind := m[1], m[2]
		if kinds[frame] == nil {
			kinds[frame] = make(map[string]bool)
		}
		kinds[frame][kind] = true
	}

	sets := classify(kinds, i.policy.ExpectedKinds(sequence))
	i.logger.Debug("scanned sequence",
		log.String("sequence", sequence),
		log.Int("complete", len(sets.Complete)),
		log.Int("incomplete", len(sets.Incomplete)))
	return sets, nil
}

// classify splits frames into complete ones and incomplete ones with their
// missing kinds, in expected order.
func classify(kinds map[string]map[string]bool, expected []string) domain.FrameSets {
	sets := domain.FrameSets{Incomplete: make(map[string][]string)}
	for frame, present := range kinds {
		var missing []string
		for _, kind := range expected {
			if !present[kind] {
				missing = append(missing, kind)
			}
		}
		if len(missing) > 0 {
			sets.Incomplete[frame] = missing
		} else {
			sets.Complete = append(sets.Complete, frame)
		}
	}
	sort.Strings(sets.Complete)
	return sets
}

func sequenceDir(root, sequence string) string {
	if sequence == selection.DataSyn {
		return filepath.Join(root, DataSynDir)
	}
	return filepath.Join(root, DataDir, sequence)
}

// validSequenceName rejects names that would leave the data directory.
func validSequenceName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var _ ports.Inventory = (*Inventory)(nil)
