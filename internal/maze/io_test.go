package maze

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qmaze/internal/engine"
)

func TestFileSourceAndSink(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "maze.txt")
	out := filepath.Join(dir, "solved.txt")
	require.NoError(t, os.WriteFile(in, []byte("00\n10\n"), 0o644))

	grid, err := FileSource{Path: in}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, engine.Grid{{0, 0}, {1, 0}}, grid)

	grid[0][0], grid[0][1], grid[1][1] = 2, 2, 2
	require.NoError(t, FileSink{Path: out}.Save(context.Background(), grid))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "22\n12", string(data))
}

func TestFileSourceMissing(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "absent.txt")}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSinkDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultOutputPath, FileSink{}.path())
}

func TestReaderSourceWriterSink(t *testing.T) {
	grid, err := ReaderSource{R: strings.NewReader("01\n00")}.Load(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriterSink{W: &buf}.Save(context.Background(), grid))
	assert.Equal(t, "01\n00", buf.String())
}

func TestSourceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReaderSource{R: strings.NewReader("0")}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
