package dataset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bft-labs/ycbvideo/internal/domain"
	"github.com/bft-labs/ycbvideo/internal/ports"
	"github.com/bft-labs/ycbvideo/pkg/log"
	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// Materializer loads the files of a frame. It does not check completeness
// against an inventory; a missing mandatory file fails the load.
type Materializer struct {
	root   string
	policy Policy
	logger log.Logger
}

// NewMaterializer creates a materializer for the dataset at root.
func NewMaterializer(root string, policy Policy, logger log.Logger) *Materializer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Materializer{root: root, policy: policy, logger: logger}
}

// LoadFrame decodes the images of d and reads its boxes and metadata.
func (m *Materializer) LoadFrame(ctx context.Context, d domain.Descriptor) (domain.Frame, error) {
	if !validSequenceName(d.Sequence) {
		return domain.Frame{}, fmt.Errorf("%q: %w", d.Sequence, domain.ErrSequenceNotFound)
	}
	dir := sequenceDir(m.root, d.Sequence)
	frame := domain.Frame{Descriptor: d}

	images := []struct {
		kind string
		dst  *image.Image
	}{
		{KindColor, &frame.Color},
		{KindDepth, &frame.Depth},
		{KindLabel, &frame.Label},
	}
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return domain.Frame{}, err
		}
		decoded, err := decodePNG(filepath.Join(dir, FileName(d.Frame, img.kind)))
		if err != nil {
			return domain.Frame{}, fmt.Errorf("load %s: %w", d, err)
		}
		*img.dst = decoded
	}

	if err := ctx.Err(); err != nil {
		return domain.Frame{}, err
	}
	boxes, err := m.loadBoxes(dir, d)
	if err != nil {
		return domain.Frame{}, fmt.Errorf("load %s: %w", d, err)
	}
	frame.Boxes = boxes

	if err := ctx.Err(); err != nil {
		return domain.Frame{}, err
	}
	meta, err := os.ReadFile(filepath.Join(dir, FileName(d.Frame, KindMeta)))
	switch {
	case err == nil:
		frame.Meta = meta
	case errors.Is(err, fs.ErrNotExist) && !m.policy.RequireMeta:
		m.logger.Debug("frame has no metadata file", log.String("frame", d.String()))
	default:
		return domain.Frame{}, fmt.Errorf("load %s: %w", d, err)
	}

	return frame, nil
}

// loadBoxes returns nil for synthetic frames without a box file unless the
// policy demands one.
func (m *Materializer) loadBoxes(dir string, d domain.Descriptor) ([]domain.Box, error) {
	path := filepath.Join(dir, FileName(d.Frame, KindBox))
	if d.Sequence == selection.DataSyn && !m.policy.RequireSyntheticBoxes {
		if _, err := os.Stat(path); err != nil {
			return nil, nil
		}
	}
	return ReadBoxFile(path)
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

var _ ports.FrameLoader = (*Materializer)(nil)
