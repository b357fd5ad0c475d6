package selection

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadExpressions(t *testing.T) {
	got, err := ReadExpressions(strings.NewReader("1/*\n\n  2/[2,3,5]  \r\n\t\n# not a comment/1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1/*", "2/[2,3,5]", "# not a comment/1"}, got)

	got, err = ReadExpressions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadExpressionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.txt")
	require.NoError(t, os.WriteFile(path, []byte("data_syn/1\n0/1"), 0o644))

	got, err := LoadExpressionFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"data_syn/1", "0/1"}, got)

	_, err = LoadExpressionFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
