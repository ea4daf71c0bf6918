package puzzle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/internal/puzzle"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"L.L", "#.#"}, puzzle.Lines("L.L \r\n\r\n#.#\n"))
	assert.Empty(t, puzzle.Lines("\n \n"))
}

func TestRead(t *testing.T) {
	p := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(p, []byte("a\r\nb\n\n"), 0o644))

	got, err := puzzle.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	require.NoError(t, os.WriteFile(p, []byte("\n\n"), 0o644))
	_, err = puzzle.Read(p)
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)

	_, err = puzzle.Read(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
