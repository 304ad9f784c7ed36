package level

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Glyphs(t *testing.T) {
	l := New()
	l.Set(Point{0, 0}, Bit(Floor))
	l.Set(Point{1, 0}, Bit(Wall))
	l.Set(Point{2, 0}, Tiles(Floor, Spikes))
	l.Set(Point{3, 0}, Tiles(Floor, Exit))
	l.Set(Point{4, 0}, Tiles(Floor, Exit, Lock))
	l.Set(Point{5, 0}, Tiles(Floor, Gold))
	l.Set(Point{6, 0}, Tiles(Floor, Key, Gold))
	l.Set(Point{7, 0}, Tiles(Floor, Enemy))
	l.Set(Point{8, 0}, Tiles(Floor, Player, Enemy))

	rows := strings.Split(l.String(), "\n")
	require.Len(t, rows, Size+1, "trailing newline after the last row")
	assert.Equal(t, "_#^E%*KEP"+strings.Repeat(" ", Size-9), rows[0])
	assert.Equal(t, strings.Repeat(" ", Size), rows[1])
	assert.Equal(t, "", rows[Size])
}

func TestParseDump_RoundTrip(t *testing.T) {
	l := validLevel()
	l.Set(Point{3, 3}, Tiles(Floor, Gold))
	l.Set(Point{4, 3}, Tiles(Floor, Spikes))
	l.Set(Point{5, 3}, 0)

	got, err := ParseDump(l.String())
	require.NoError(t, err)
	assert.Equal(t, *l, *got)
}

func TestParseDump_Enemy(t *testing.T) {
	rows := make([]string, Size)
	for i := range rows {
		rows[i] = strings.Repeat("#", Size)
	}
	rows[0] = "M_ " + strings.Repeat("#", Size-3)
	l, err := ParseDump(strings.Join(rows, "\n") + "\n")
	require.NoError(t, err)
	assert.Equal(t, Tiles(Floor, Enemy), l.At(Point{0, 0}))
	assert.Equal(t, Bit(Floor), l.At(Point{1, 0}))
	assert.Equal(t, Tile(0), l.At(Point{2, 0}))
	assert.Equal(t, Bit(Wall), l.At(Point{0, Size - 1}))
}

func TestParseDump_Errors(t *testing.T) {
	_, err := ParseDump("##\n##\n")
	assert.ErrorIs(t, err, ErrBadDump)

	rows := make([]string, Size)
	for i := range rows {
		rows[i] = strings.Repeat("#", Size)
	}
	rows[4] = strings.Repeat("#", Size+1)
	_, err = ParseDump(strings.Join(rows, "\n"))
	assert.ErrorIs(t, err, ErrBadDump)

	rows[4] = strings.Repeat("#", Size-1)
	_, err = ParseDump(strings.Join(rows, "\n"))
	assert.ErrorIs(t, err, ErrBadDump, "short rows are not padded")

	rows[4] = ""
	_, err = ParseDump(strings.Join(rows, "\n"))
	assert.ErrorIs(t, err, ErrBadDump)

	rows[4] = "#?" + strings.Repeat("#", Size-2)
	_, err = ParseDump(strings.Join(rows, "\r\n"))
	assert.ErrorIs(t, err, ErrBadDump)
}
