package ycbvideo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/bft-labs/ycbvideo/internal/app"
	"github.com/bft-labs/ycbvideo/pkg/dataset"
	"github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// Loader selects frames of a dataset. Every call resolves against the
// current state of the dataset; no results are cached between calls.
type Loader struct {
	root      string
	inventory Inventory
	frames    FrameLoader
	resolver  *app.Resolver
	rand      *rand.Rand
	logger    Logger
}

// New creates a Loader for the dataset at cfg.DatasetRoot.
func New(cfg Config, opts ...Option) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	inventory := o.inventory
	if inventory == nil {
		inventory = dataset.NewInventory(cfg.DatasetRoot, o.policy, logger)
	}

	frames := o.frameLoader
	if frames == nil {
		frames = dataset.NewMaterializer(cfg.DatasetRoot, o.policy, logger)
	}

	r := o.rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Loader{
		root:      cfg.DatasetRoot,
		inventory: inventory,
		frames:    frames,
		resolver:  app.NewResolver(inventory, logger),
		rand:      r,
		logger:    logger,
	}, nil
}

// Root returns the dataset root directory.
func (l *Loader) Root() string {
	return l.root
}

// Inventory returns the inventory the loader resolves against.
func (l *Loader) Inventory() Inventory {
	return l.inventory
}

// Frames resolves expressions into a FrameSet. When shuffle is true the
// descriptors are permuted with the loader's random source.
func (l *Loader) Frames(ctx context.Context, expressions []string, shuffle bool) (*FrameSet, error) {
	descriptors, err := l.resolver.ResolveExpressions(ctx, expressions)
	if err != nil {
		return nil, err
	}

	set := newFrameSet(descriptors, l.frames)
	if shuffle {
		set.Shuffle(l.rand)
	}

	l.logger.Info("selected frames",
		log.Int("expressions", len(expressions)),
		log.Int("frames", set.Len()),
		log.Bool("shuffled", shuffle))
	return set, nil
}

// Frame loads a single frame. sequence may be a number or "data_syn";
// frame must be a number. Incomplete and absent frames are errors.
func (l *Loader) Frame(ctx context.Context, sequence, frame string) (Frame, error) {
	seq := sequence
	if seq != selection.DataSyn {
		var err error
		if seq, err = normalizeNumeric(sequence, selection.AxisSequence); err != nil {
			return Frame{}, err
		}
	}
	id, err := normalizeNumeric(frame, selection.AxisFrame)
	if err != nil {
		return Frame{}, err
	}

	sets, err := l.inventory.FrameSets(ctx, seq)
	if err != nil {
		return Frame{}, err
	}
	if missing, ok := sets.Missing(id); ok {
		return Frame{}, &IncompleteFrameError{Sequence: seq, Frame: id, Missing: missing}
	}
	if !slices.Contains(sets.Complete, id) {
		return Frame{}, fmt.Errorf("%s/%s: %w", seq, id, ErrFrameNotFound)
	}

	return l.frames.LoadFrame(ctx, Descriptor{Sequence: seq, Frame: id})
}

// normalizeNumeric rejects the reserved literals Normalize lets through.
func normalizeNumeric(token string, axis selection.Axis) (string, error) {
	if !selection.IsNumeric(token) {
		return "", &selection.InvalidIdentifierError{Token: token, Axis: axis, Reason: "not a number"}
	}
	return selection.Normalize(token, axis)
}
