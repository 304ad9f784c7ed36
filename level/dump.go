package level

import (
	"fmt"
	"io"
	"strings"
)

// glyphs is indexed by Tile.Top(). Exit and Enemy share 'E'.
const glyphs = " _#^E%*KEP"

// parseGlyphs maps dump characters back to canonical tiles. 'M' is accepted
// for an enemy because the dump cannot tell it apart from an exit.
var parseGlyphs = map[rune]Tile{
	' ': 0,
	'_': Bit(Floor),
	'#': Bit(Wall),
	'^': Tiles(Floor, Spikes),
	'E': Tiles(Floor, Exit),
	'%': Tiles(Floor, Exit, Lock),
	'*': Tiles(Floor, Gold),
	'K': Tiles(Floor, Key),
	'M': Tiles(Floor, Enemy),
	'P': Tiles(Floor, Player),
}

// Glyph returns the dump character for t.
func (t Tile) Glyph() byte { return glyphs[t.Top()] }

// String renders the debug dump: one glyph per tile, a newline after each row.
func (l *Level) String() string {
	var b strings.Builder
	b.Grow(Area + Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.WriteByte(l[x+y*Size].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes the debug dump to w.
func (l *Level) Dump(w io.Writer) error {
	_, err := io.WriteString(w, l.String())
	return err
}

// ParseDump builds a level from a text dump. Exactly Size rows of exactly
// Size glyphs are required; a trailing newline is optional.
func ParseDump(s string) (*Level, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	rows := strings.Split(s, "\n")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadDump, len(rows), Size)
	}
	l := New()
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != Size {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadDump, y, len(runes), Size)
		}
		for x, r := range runes {
			t, ok := parseGlyphs[r]
			if !ok {
				return nil, fmt.Errorf("%w: glyph %q at (%d,%d)", ErrBadDump, r, x, y)
			}
			l[x+y*Size] = t
		}
	}
	return l, nil
}
