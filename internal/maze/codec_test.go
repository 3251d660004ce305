package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qmaze/internal/engine"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  engine.Grid
	}{
		{"single cell", "0", engine.Grid{{0}}},
		{"rows", "000\n110\n000", engine.Grid{{0, 0, 0}, {1, 1, 0}, {0, 0, 0}}},
		{"trailing newline", "01\n10\n", engine.Grid{{0, 1}, {1, 0}}},
		{"crlf", "01\r\n10\r\n", engine.Grid{{0, 1}, {1, 0}}},
		{"trailing blank lines", "00\n00\n\n\n", engine.Grid{{0, 0}, {0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("")
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseString("\n\n")
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = ParseString("000\n00")
	assert.ErrorIs(t, err, ErrRaggedGrid)

	_, err = ParseString("0x0")
	assert.ErrorIs(t, err, ErrInvalidCell)

	_, err = ParseString("02\n00")
	assert.ErrorIs(t, err, ErrInvalidCell)
	assert.ErrorContains(t, err, "line 1, column 2")

	_, err = ParseString("00\n09")
	assert.ErrorIs(t, err, ErrInvalidCell)

	_, err = ParseString("00\n\n00")
	assert.ErrorContains(t, err, "blank line")
}

func TestFormat(t *testing.T) {
	grid := engine.Grid{{2, 2, 2}, {1, 1, 2}, {0, 0, 2}}
	assert.Equal(t, "222\n112\n002", Format(grid))
	assert.Equal(t, "", Format(nil))
}

func TestFormatParseRoundTrip(t *testing.T) {
	text := "0010\n1000\n0110"
	grid, err := ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, text, Format(grid))
}
