package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	g := MustParse(
		"S.#",
		".##",
		"..G",
	)
	file := filepath.Join(t.TempDir(), "plan.png")
	path := []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}

	require.NoError(t, RenderPNG(file, g, path))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderPNG_EmptyGridAndPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, RenderPNG(file, New(2, 2), nil))
	_, err := os.Stat(file)
	assert.NoError(t, err)
}
