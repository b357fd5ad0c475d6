package dataset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBoxes = "002_master_chef_can 222.1 41.3 297.6 161.0\n003_cracker_box 134.0 1.0 231.9 179.5\n"

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, 2, 3))
	img.SetGray16(1, 2, color.Gray16{Y: 4000})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// writeFrame writes the given kinds of files of frame into dir.
func writeFrame(t *testing.T, dir, frame string, kinds ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, kind := range kinds {
		var data []byte
		switch kind {
		case KindBox:
			data = []byte(testBoxes)
		case KindMeta:
			data = []byte("MATLAB 5.0 MAT-file")
		default:
			data = pngBytes(t)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(frame, kind)), data, 0o644))
	}
}

var allKinds = []string{KindColor, KindDepth, KindLabel, KindMeta, KindBox}

// newTestDataset builds:
//
//	data/0000: 000001 complete
//	data/0001: 000001, 000002 complete; 000003 without color and box
//	data_syn:  000001 without box
func newTestDataset(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFrame(t, filepath.Join(root, DataDir, "0000"), "000001", allKinds...)
	seq1 := filepath.Join(root, DataDir, "0001")
	writeFrame(t, seq1, "000001", allKinds...)
	writeFrame(t, seq1, "000002", allKinds...)
	writeFrame(t, seq1, "000003", KindDepth, KindLabel, KindMeta)
	require.NoError(t, os.WriteFile(filepath.Join(seq1, "README"), []byte("x"), 0o644))
	writeFrame(t, filepath.Join(root, DataSynDir), "000001", KindColor, KindDepth, KindLabel, KindMeta)
	return root
}
