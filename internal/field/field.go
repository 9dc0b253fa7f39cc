package field

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Params configure a Field at construction. Dimensions are per-field
// values, not globals, so independent games can coexist in one process.
type Params struct {
	Width     int `schema:"width,required" json:"width"`
	Height    int `schema:"height,required" json:"height"`
	MineCount int `schema:"mine_count,required" json:"mine_count"`
}

func (p Params) Size() int {
	return p.Width * p.Height
}

// Validate reports whether the parameters describe a playable field.
// PlaceMines requires MineCount < Size or its sampling loop cannot
// terminate; callers must check this before constructing a game.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size() {
		return fmt.Errorf(
			"mine count %d out of range for a %dx%d field",
			p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

// Field owns the cell arena and all game-affecting state: which cells
// are mined, marked and explored. It has no notion of winning a turn or
// losing the game; that ordering lives in the game package.
type Field struct {
	params   Params
	glyphs   Glyphs
	cells    []Cell
	mined    map[int]struct{}
	marked   map[int]struct{}
	explored map[int]struct{}
	setUp    bool
}

func New(params Params) *Field {
	return NewWithGlyphs(params, DefaultGlyphs())
}

// NewWithGlyphs builds a field rendered with custom glyphs.
func NewWithGlyphs(params Params, glyphs Glyphs) *Field {
	return &Field{
		params:   params,
		glyphs:   glyphs,
		cells:    make([]Cell, params.Size()),
		mined:    make(map[int]struct{}, params.MineCount),
		marked:   map[int]struct{}{},
		explored: map[int]struct{}{},
	}
}

func (f *Field) Params() Params { return f.params }
func (f *Field) Size() int      { return len(f.cells) }
func (f *Field) IsSetUp() bool  { return f.setUp }

// Index converts coordinates to a flat arena index.
func (f *Field) Index(x, y int) int {
	return y*f.params.Width + x
}

// Coords is the inverse of Index for every index in [0, Size).
func (f *Field) Coords(i int) (x, y int) {
	return i % f.params.Width, i / f.params.Width
}

func (f *Field) Contains(x, y int) bool {
	return 0 <= x && x < f.params.Width && 0 <= y && y < f.params.Height
}

// Cell returns a copy of the cell at i, reporting absence for
// out-of-range indices rather than panicking.
func (f *Field) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(f.cells) {
		return Cell{}, false
	}
	return f.cells[i], true
}

// Neighbours returns the up to 8 in-bounds cells adjacent to i, in
// row-major order over the 3x3 window. The order is deterministic so
// flood-fill traversals reproduce exactly, though nothing relies on it
// for correctness.
func (f *Field) Neighbours(i int) []int {
	return Adjacent(i, f.params.Width, f.params.Height)
}

// Adjacent is the pure neighbourhood function of (index, dimensions).
func Adjacent(i, width, height int) []int {
	x, y := i%width, i/width
	ns := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= width || yy < 0 || yy >= height {
				continue
			}
			ns = append(ns, yy*width+xx)
		}
	}
	return ns
}

// Reset zeroes every cell value and clears the mined set. Explored and
// marked state is left alone; Reset only runs as part of PlaceMines.
func (f *Field) Reset() {
	for i := range f.cells {
		f.cells[i].Value = 0
	}
	clear(f.mined)
	f.setUp = false
}

// PlaceMines performs a fresh mine placement: MineCount distinct
// uniform random cells, never including exclude, then derives every
// safe cell's adjacency count from the complete mine set.
//
// Precondition: params.MineCount < Size, or the sampling loop cannot
// terminate. Validated by the caller via Params.Validate.
func (f *Field) PlaceMines(exclude int, r *rand.Rand) {
	f.Reset()
	for len(f.mined) < f.params.MineCount {
		i := r.IntN(len(f.cells))
		if i == exclude {
			continue
		}
		f.mined[i] = struct{}{}
	}
	for i := range f.mined {
		f.cells[i].Value = Mine
	}
	f.deriveCounts()
	f.setUp = true
}

// deriveCounts assigns every safe cell the number of mined neighbours.
// Must run only after the complete mine set is known.
func (f *Field) deriveCounts() {
	for i := range f.cells {
		if f.cells[i].Value == Mine {
			continue
		}
		n := 0
		for _, j := range f.Neighbours(i) {
			if f.cells[j].Value == Mine {
				n++
			}
		}
		f.cells[i].Value = Value(n)
	}
}

// PlaceMinesAt performs a placement with an explicit mine layout
// instead of a random one. Useful for scripted games and tests; the
// adjacency derivation is identical to PlaceMines.
func (f *Field) PlaceMinesAt(mines ...int) {
	f.Reset()
	for _, i := range mines {
		f.mined[i] = struct{}{}
		f.cells[i].Value = Mine
	}
	f.deriveCounts()
	f.setUp = true
}

// Reveal explores the cell at i and, when it has no mined neighbours,
// flood-fills outward through connected zero-count cells. Revealing a
// marked cell removes its mark. The explored set doubles as the visited
// set, so the work list terminates on the cyclic adjacency graph.
//
// Reveal has no mine branch: callers decide the loss condition by
// checking the target's value before calling.
func (f *Field) Reveal(i int) {
	queue := []int{i}
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		c := &f.cells[j]
		if c.Explored {
			continue
		}
		if c.Marked {
			c.Marked = false
			delete(f.marked, j)
		}
		c.Explored = true
		f.explored[j] = struct{}{}
		if c.Value != 0 {
			continue
		}
		for _, n := range f.Neighbours(j) {
			if !f.cells[n].Explored {
				queue = append(queue, n)
			}
		}
	}
}

// ToggleMark flips the marked flag of an unexplored cell. Marking an
// explored cell is a driver error; the engine ignores it.
func (f *Field) ToggleMark(i int) {
	c := &f.cells[i]
	if c.Explored {
		return
	}
	if c.Marked {
		c.Marked = false
		delete(f.marked, i)
	} else {
		c.Marked = true
		f.marked[i] = struct{}{}
	}
}

// Won reports the win condition: the marked set equals the mined set
// exactly and every safe cell has been explored. Both must hold at
// once; revealing all safe cells without flagging every mine does not
// win.
func (f *Field) Won() bool {
	if !f.setUp {
		return false
	}
	if len(f.explored) != f.Size()-f.params.MineCount {
		return false
	}
	if len(f.marked) != len(f.mined) {
		return false
	}
	for i := range f.mined {
		if _, ok := f.marked[i]; !ok {
			return false
		}
	}
	return true
}

// Mined, Marked and Explored return copies of the index sets for
// drivers and tests; mutating a copy does not affect the field.
func (f *Field) Mined() map[int]struct{}    { return copySet(f.mined) }
func (f *Field) Marked() map[int]struct{}   { return copySet(f.marked) }
func (f *Field) Explored() map[int]struct{} { return copySet(f.explored) }

func (f *Field) ExploredCount() int { return len(f.explored) }

func copySet(s map[int]struct{}) map[int]struct{} {
	c := make(map[int]struct{}, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// DisplayRune is the single-character rendering of a cell: hidden,
// marked, its count when explored, or the mine glyph when showMines
// forces mines visible after the game has ended.
func (f *Field) DisplayRune(i int, showMines bool) rune {
	c := f.cells[i]
	switch {
	case showMines && c.Value == Mine:
		return f.glyphs.Mine
	case c.Marked:
		return f.glyphs.Marked
	case c.Explored:
		return rune('0' + c.Value)
	default:
		return f.glyphs.Hidden
	}
}

// Render draws the whole grid, one row per line.
func (f *Field) Render(showMines bool) string {
	var b strings.Builder
	for y := 0; y < f.params.Height; y++ {
		for x := 0; x < f.params.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(f.DisplayRune(f.Index(x, y), showMines))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
