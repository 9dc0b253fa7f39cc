package field

import "strconv"

// Value is the content of a single cell: either Mine or the number of
// mined neighbours (0-8) shown once the cell is explored.
type Value int8

const Mine Value = -1

func (v Value) IsMine() bool {
	return v == Mine
}

func (v Value) IsSafe() bool {
	return v != Mine
}

func (v Value) String() string {
	if v == Mine {
		return "X"
	}
	return strconv.Itoa(int(v))
}

// Cell is one grid position. Cells live in an arena owned by the Field
// and are addressed by flat index; they hold no reference back to it.
type Cell struct {
	Value    Value
	Explored bool
	Marked   bool
}

// Glyphs are the runes a driver uses to render cells.
type Glyphs struct {
	Hidden rune
	Marked rune
	Mine   rune
}

func DefaultGlyphs() Glyphs {
	return Glyphs{Hidden: '.', Marked: '*', Mine: 'X'}
}
