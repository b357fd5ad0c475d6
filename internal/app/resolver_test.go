package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/ycbvideo/internal/domain"
	"github.com/bft-labs/ycbvideo/internal/ports"
	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// memInventory implements ports.Inventory in memory for testing.
type memInventory struct {
	sets     map[string]domain.FrameSets
	listErr  error
	setsErr  error
	setCalls []string
}

func (m *memInventory) Sequences(context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	// Deliberately unsorted.
	out := make([]string, 0, len(m.sets))
	for seq := range m.sets {
		out = append(out, seq)
	}
	return out, nil
}

func (m *memInventory) FrameSets(_ context.Context, sequence string) (domain.FrameSets, error) {
	m.setCalls = append(m.setCalls, sequence)
	if m.setsErr != nil {
		return domain.FrameSets{}, m.setsErr
	}
	sets, ok := m.sets[sequence]
	if !ok {
		return domain.FrameSets{}, fmt.Errorf("%s: %w", sequence, domain.ErrSequenceNotFound)
	}
	return sets, nil
}

func frames(ids ...string) []string { return ids }

func newTestInventory() *memInventory {
	return &memInventory{sets: map[string]domain.FrameSets{
		"0000":     {Complete: frames("000001")},
		"0001":     {Complete: frames("000001", "000002", "000003", "000004", "000005")},
		"0002":     {Complete: frames("000002", "000003", "000005")},
		"data_syn": {Complete: frames("000001", "000002")},
	}}
}

func descriptors(pairs ...string) []domain.Descriptor {
	out := make([]domain.Descriptor, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.Descriptor{Sequence: pairs[i], Frame: pairs[i+1]})
	}
	return out
}

func TestResolver_EndToEnd(t *testing.T) {
	r := NewResolver(newTestInventory(), &mockLogger{})

	got, err := r.ResolveExpressions(context.Background(), []string{"1/*", "2/[2,3,5]", "data_syn/000001"})
	require.NoError(t, err)
	assert.Equal(t, descriptors(
		"0001", "000001", "0001", "000002", "0001", "000003", "0001", "000004", "0001", "000005",
		"0002", "000002", "0002", "000003", "0002", "000005",
		"data_syn", "000001",
	), got)
}

func TestResolver_Orders(t *testing.T) {
	r := NewResolver(newTestInventory(), nil)

	tests := []struct {
		name string
		expr []string
		want []domain.Descriptor
	}{
		{
			name: "reverse frames",
			expr: []string{"2/::-1"},
			want: descriptors("0002", "000005", "0002", "000003", "0002", "000002"),
		},
		{
			name: "list order across sequences",
			expr: []string{"[2,1]/[5,3]"},
			want: descriptors("0002", "000005", "0002", "000003", "0001", "000005", "0001", "000003"),
		},
		{
			name: "data excludes data_syn",
			expr: []string{"data/:"},
			want: descriptors(
				"0000", "000001",
				"0001", "000001", "0001", "000002", "0001", "000003", "0001", "000004", "0001", "000005",
				"0002", "000002", "0002", "000003", "0002", "000005",
			),
		},
		{
			name: "selector order is kept",
			expr: []string{"data_syn/2", "0/1"},
			want: descriptors("data_syn", "000002", "0000", "000001"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveExpressions(context.Background(), tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_IncompleteFrame(t *testing.T) {
	inv := newTestInventory()
	inv.sets["0001"] = domain.FrameSets{
		Complete:   frames("000001", "000002", "000004", "000005"),
		Incomplete: map[string][]string{"000003": {"color"}},
	}
	r := NewResolver(inv, nil)

	_, err := r.ResolveExpressions(context.Background(), []string{"1/:"})
	var incomplete *domain.IncompleteFrameError
	require.True(t, errors.As(err, &incomplete), "got %v", err)
	assert.Equal(t, "0001", incomplete.Sequence)
	assert.Equal(t, "000003", incomplete.Frame)
	assert.Equal(t, []string{"color"}, incomplete.Missing)
	assert.Contains(t, err.Error(), "0001/000003")

	// Incomplete frames can be range boundaries.
	got, err := r.ResolveExpressions(context.Background(), []string{"1/:3", "1/4:"})
	require.NoError(t, err)
	assert.Equal(t, descriptors(
		"0001", "000001", "0001", "000002",
		"0001", "000004", "0001", "000005",
	), got)

	// Naming the frame directly also reports it as incomplete.
	_, err = r.ResolveExpressions(context.Background(), []string{"1/3"})
	assert.True(t, errors.As(err, &incomplete))
}

func TestResolver_SequenceErrors(t *testing.T) {
	inv := &memInventory{sets: map[string]domain.FrameSets{
		"0000": {Complete: frames("000001")},
		"0001": {Complete: frames("000001")},
		"0002": {Complete: frames("000001")},
	}}
	r := NewResolver(inv, nil)

	_, err := r.ResolveExpressions(context.Background(), []string{"42:/:"})
	var seqErr *domain.SequenceUnavailableError
	require.True(t, errors.As(err, &seqErr), "got %v", err)
	var missing *selection.MissingElementError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "0042", missing.Element)
	assert.Equal(t, selection.RoleRangeStart, missing.Role)

	_, err = r.ResolveExpressions(context.Background(), []string{"0000:0000/1"})
	var empty *selection.EmptySelectionError
	assert.True(t, errors.As(err, &empty), "got %v", err)

	_, err = r.ResolveExpressions(context.Background(), []string{"data_syn/1"})
	assert.True(t, errors.As(err, &seqErr))
}

func TestResolver_FrameErrors(t *testing.T) {
	inv := newTestInventory()
	inv.sets["0003"] = domain.FrameSets{}
	r := NewResolver(inv, nil)

	_, err := r.ResolveExpressions(context.Background(), []string{"2/1"})
	var frameErr *domain.FrameUnavailableError
	require.True(t, errors.As(err, &frameErr), "got %v", err)
	assert.Equal(t, "0002", frameErr.Sequence)
	var missing *selection.MissingElementError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "000001", missing.Element)

	_, err = r.ResolveExpressions(context.Background(), []string{"3/*"})
	require.True(t, errors.As(err, &frameErr))
	assert.ErrorIs(t, err, selection.ErrNoElements)
}

func TestResolver_FailFast(t *testing.T) {
	inv := newTestInventory()
	r := NewResolver(inv, nil)

	got, err := r.ResolveExpressions(context.Background(), []string{"1/*", "2/4", "0/1"})
	require.Error(t, err)
	assert.Nil(t, got)
	// The third selector is never looked at.
	assert.Equal(t, []string{"0001", "0002"}, inv.setCalls)
}

func TestResolver_ParseErrors(t *testing.T) {
	r := NewResolver(newTestInventory(), nil)

	_, err := r.ResolveExpressions(context.Background(), []string{"1/*", "::0/1"})
	assert.ErrorIs(t, err, selection.ErrParse)
	assert.ErrorIs(t, err, selection.ErrInvalidRange)
	var perr *selection.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Index)

	_, err = r.ResolveExpressions(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoExpressions)
}

func TestResolver_InventoryErrors(t *testing.T) {
	boom := errors.New("disk gone")

	r := NewResolver(&memInventory{listErr: boom}, nil)
	_, err := r.ResolveExpressions(context.Background(), []string{"*/*"})
	assert.ErrorIs(t, err, boom)

	inv := newTestInventory()
	inv.setsErr = boom
	r = NewResolver(inv, nil)
	_, err = r.ResolveExpressions(context.Background(), []string{"*/*"})
	assert.ErrorIs(t, err, boom)
}

func TestResolver_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResolver(newTestInventory(), nil)
	_, err := r.ResolveExpressions(ctx, []string{"*/*"})
	assert.ErrorIs(t, err, context.Canceled)
}
