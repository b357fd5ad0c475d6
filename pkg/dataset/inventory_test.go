package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/ycbvideo/internal/domain"
)

func TestInventory_Sequences(t *testing.T) {
	root := newTestDataset(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, DataDir, "notes.txt"), []byte("x"), 0o644))
	inv := NewInventory(root, DefaultPolicy(), nil)

	got, err := inv.Sequences(context.Background())
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{"0000", "0001", "data_syn"}, got)
}

func TestInventory_SequencesWithoutSynthetic(t *testing.T) {
	root := t.TempDir()
	writeFrame(t, filepath.Join(root, DataDir, "0005"), "000001", allKinds...)

	got, err := NewInventory(root, DefaultPolicy(), nil).Sequences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0005"}, got)
}

func TestInventory_SequencesMissingDataDir(t *testing.T) {
	_, err := NewInventory(t.TempDir(), DefaultPolicy(), nil).Sequences(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInventory_FrameSets(t *testing.T) {
	inv := NewInventory(newTestDataset(t), DefaultPolicy(), nil)

	sets, err := inv.FrameSets(context.Background(), "0001")
	require.NoError(t, err)
	assert.Equal(t, []string{"000001", "000002"}, sets.Complete)
	assert.Equal(t, map[string][]string{"000003": {"color", "box"}}, sets.Incomplete)
	assert.Equal(t, []string{"000001", "000002", "000003"}, sets.Available())

	syn, err := inv.FrameSets(context.Background(), "data_syn")
	require.NoError(t, err)
	assert.Equal(t, []string{"000001"}, syn.Complete)
	assert.Empty(t, syn.Incomplete)
}

func TestInventory_FrameSetsPolicy(t *testing.T) {
	root := newTestDataset(t)
	require.NoError(t, os.Remove(filepath.Join(root, DataDir, "0000", FileName("000001", KindMeta))))

	sets, err := NewInventory(root, DefaultPolicy(), nil).FrameSets(context.Background(), "0000")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"000001": {"meta"}}, sets.Incomplete)

	sets, err = NewInventory(root, Policy{}, nil).FrameSets(context.Background(), "0000")
	require.NoError(t, err)
	assert.Equal(t, []string{"000001"}, sets.Complete)

	syn, err := NewInventory(root, Policy{RequireMeta: true, RequireSyntheticBoxes: true}, nil).
		FrameSets(context.Background(), "data_syn")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"000001": {"box"}}, syn.Incomplete)
}

func TestInventory_FrameSetsUnknownSequence(t *testing.T) {
	inv := NewInventory(newTestDataset(t), DefaultPolicy(), nil)

	for _, seq := range []string{"0042", "..", "../data", ""} {
		_, err := inv.FrameSets(context.Background(), seq)
		assert.ErrorIs(t, err, domain.ErrSequenceNotFound, seq)
	}
}

func TestInventory_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inv := NewInventory(newTestDataset(t), DefaultPolicy(), nil)

	_, err := inv.Sequences(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = inv.FrameSets(ctx, "0001")
	assert.ErrorIs(t, err, context.Canceled)
}
