package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/bft-labs/ycbvideo/internal/domain"
	"github.com/bft-labs/ycbvideo/internal/ports"
	"github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// Resolver expands frame selectors into descriptors against an inventory.
// Resolution is fail-fast: the first error aborts the whole batch and no
// partial result is returned.
type Resolver struct {
	inventory ports.Inventory
	logger    ports.Logger
}

// NewResolver creates a resolver over the given inventory.
func NewResolver(inventory ports.Inventory, logger ports.Logger) *Resolver {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Resolver{inventory: inventory, logger: logger}
}

// ResolveExpressions parses expressions and resolves them.
func (r *Resolver) ResolveExpressions(ctx context.Context, expressions []string) ([]domain.Descriptor, error) {
	if len(expressions) == 0 {
		return nil, domain.ErrNoExpressions
	}
	selectors, err := selection.ParseMany(expressions)
	if err != nil {
		return nil, err
	}
	return r.Resolve(ctx, selectors)
}

// Resolve returns the descriptors selected by selectors, in selector order
// and, within a selector, in the order its evaluation produced.
func (r *Resolver) Resolve(ctx context.Context, selectors []selection.FrameSelector) ([]domain.Descriptor, error) {
	sequences, err := r.inventory.Sequences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	sequences = append([]string(nil), sequences...)
	sort.Strings(sequences)

	var descriptors []domain.Descriptor
	for _, sel := range selectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resolved, err := r.resolveSelector(ctx, sel, sequences)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("resolved selection expression",
			log.String("expression", sel.Expression),
			log.Int("descriptors", len(resolved)))
		descriptors = append(descriptors, resolved...)
	}
	return descriptors, nil
}

func (r *Resolver) resolveSelector(ctx context.Context, sel selection.FrameSelector, sequences []string) ([]domain.Descriptor, error) {
	selected, err := selection.Evaluate(sel.Sequence, sequences)
	if err != nil {
		return nil, &domain.SequenceUnavailableError{Expression: sel.Expression, Err: err}
	}

	var descriptors []domain.Descriptor
	for _, sequence := range selected {
		sets, err := r.inventory.FrameSets(ctx, sequence)
		if err != nil {
			return nil, fmt.Errorf("frame sets of sequence %s: %w", sequence, err)
		}

		// Incomplete frames take part in evaluation so that naming one
		// reports it as incomplete rather than as missing.
		frames, err := selection.Evaluate(sel.Frame, sets.Available())
		if err != nil {
			return nil, &domain.FrameUnavailableError{Expression: sel.Expression, Sequence: sequence, Err: err}
		}

		for _, frame := range frames {
			if missing, ok := sets.Missing(frame); ok {
				return nil, &domain.IncompleteFrameError{
					Expression: sel.Expression,
					Sequence:   sequence,
					Frame:      frame,
					Missing:    missing,
				}
			}
		}

		for _, frame := range frames {
			descriptors = append(descriptors, domain.Descriptor{Sequence: sequence, Frame: frame})
		}
	}
	return descriptors, nil
}
