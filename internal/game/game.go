package game

import (
	"errors"
	"math/rand/v2"

	"github.com/minebound/minesweeper/internal/field"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrOutOfBounds = errors.New("cell is out of bounds")
	ErrExplored    = errors.New("cell is already explored")
)

// Status is the per-game state machine:
// NotSetUp -> (first command) -> InProgress -> {Won | Lost}.
type Status int8

const (
	NotSetUp Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case NotSetUp:
		return "not set up"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game wraps a Field with the rules the engine itself does not carry:
// lazy mine placement on the first command, loss detection before a
// reveal, and win evaluation after every move. Won and Lost are
// terminal; no move is valid after either.
type Game struct {
	f      *field.Field
	status Status
	rnd    *rand.Rand
}

// New builds an unplaced game. Mines are placed by the first command so
// the player's first-chosen cell is never a mine. The caller must have
// validated params (see field.Params.Validate).
func New(params field.Params, r *rand.Rand) *Game {
	return &Game{f: field.New(params), rnd: r}
}

func (g *Game) Status() Status      { return g.status }
func (g *Game) Over() bool          { return g.status == Won || g.status == Lost }
func (g *Game) Field() *field.Field { return g.f }

func (g *Game) ValidPoint(x, y int) bool {
	return g.f.Contains(x, y)
}

// ensureSetUp places mines on the first command of the game, excluding
// the chosen cell.
func (g *Game) ensureSetUp(exclude int) {
	if g.status == NotSetUp {
		g.f.PlaceMines(exclude, g.rnd)
		g.status = InProgress
	}
}

// Reveal plays an "open" move at (x, y). Revealing a mined cell loses
// the game; otherwise the engine flood-fill runs and the win condition
// is evaluated.
func (g *Game) Reveal(x, y int) error {
	if g.Over() {
		return ErrGameOver
	}
	if !g.f.Contains(x, y) {
		return ErrOutOfBounds
	}
	i := g.f.Index(x, y)
	g.ensureSetUp(i)
	c, _ := g.f.Cell(i)
	if c.Explored {
		return ErrExplored
	}
	if c.Value.IsMine() {
		g.status = Lost
		return nil
	}
	g.f.Reveal(i)
	if g.f.Won() {
		g.status = Won
	}
	return nil
}

// ToggleMark plays a "mark" move at (x, y), flipping the suspected-mine
// flag. Marks have no effect on reveals, only on the win condition.
func (g *Game) ToggleMark(x, y int) error {
	if g.Over() {
		return ErrGameOver
	}
	if !g.f.Contains(x, y) {
		return ErrOutOfBounds
	}
	i := g.f.Index(x, y)
	g.ensureSetUp(i)
	c, _ := g.f.Cell(i)
	if c.Explored {
		return ErrExplored
	}
	g.f.ToggleMark(i)
	if g.f.Won() {
		g.status = Won
	}
	return nil
}

// Render draws the grid for a driver. Once the game is over, mine
// positions are forced visible.
func (g *Game) Render() string {
	return g.f.Render(g.Over())
}
