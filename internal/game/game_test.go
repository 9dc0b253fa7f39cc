package game

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minebound/minesweeper/internal/field"
)

func testParams() field.Params {
	return field.Params{Width: 9, Height: 9, MineCount: 10}
}

func newTestGame(seed uint64) *Game {
	return New(testParams(), rand.New(rand.NewPCG(seed, seed)))
}

func TestFirstRevealIsNeverAMine(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			g := newTestGame(seed)
			require.Equal(t, NotSetUp, g.Status())

			require.NoError(t, g.Reveal(4, 4))

			assert.Equal(t, InProgress, g.Status())
			assert.True(t, g.Field().IsSetUp())
			assert.NotContains(t, g.Field().Mined(), g.Field().Index(4, 4))
		})
	}
}

func TestMarkAsFirstCommandPlacesMines(t *testing.T) {
	t.Parallel()

	g := newTestGame(1)
	require.NoError(t, g.ToggleMark(0, 0))

	assert.Equal(t, InProgress, g.Status())
	assert.True(t, g.Field().IsSetUp())
	assert.NotContains(t, g.Field().Mined(), g.Field().Index(0, 0))
	assert.Contains(t, g.Field().Marked(), g.Field().Index(0, 0))
}

func TestRevealMineLosesGame(t *testing.T) {
	t.Parallel()

	g := newTestGame(2)
	require.NoError(t, g.Reveal(0, 0))

	var mx, my int
	for i := range g.Field().Mined() {
		mx, my = g.Field().Coords(i)
		break
	}
	require.NoError(t, g.Reveal(mx, my))
	assert.Equal(t, Lost, g.Status())
	assert.True(t, g.Over())

	// Lost is terminal.
	assert.ErrorIs(t, g.Reveal(1, 1), ErrGameOver)
	assert.ErrorIs(t, g.ToggleMark(1, 1), ErrGameOver)
}

func TestWinningAGame(t *testing.T) {
	t.Parallel()

	g := newTestGame(3)
	require.NoError(t, g.Reveal(4, 4))

	mined := g.Field().Mined()
	for i := 0; i < g.Field().Size(); i++ {
		if _, isMined := mined[i]; isMined {
			continue
		}
		if c, _ := g.Field().Cell(i); !c.Explored {
			require.NoError(t, g.Reveal(g.Field().Coords(i)))
		}
	}
	// All safe cells revealed but mines not flagged: not a win yet.
	require.Equal(t, InProgress, g.Status())

	for i := range mined {
		require.NoError(t, g.ToggleMark(g.Field().Coords(i)))
	}
	assert.Equal(t, Won, g.Status())
	assert.True(t, g.Over())
	assert.ErrorIs(t, g.Reveal(0, 0), ErrGameOver)
}

func TestRevealValidation(t *testing.T) {
	t.Parallel()

	g := newTestGame(4)
	assert.ErrorIs(t, g.Reveal(-1, 0), ErrOutOfBounds)
	assert.ErrorIs(t, g.Reveal(9, 9), ErrOutOfBounds)

	require.NoError(t, g.Reveal(4, 4))
	assert.ErrorIs(t, g.Reveal(4, 4), ErrExplored)
	assert.ErrorIs(t, g.ToggleMark(4, 4), ErrExplored)
}

func TestRenderShowsMinesOnlyAfterGameOver(t *testing.T) {
	t.Parallel()

	g := newTestGame(5)
	require.NoError(t, g.Reveal(0, 0))
	assert.NotContains(t, g.Render(), "X")

	var mx, my int
	for i := range g.Field().Mined() {
		mx, my = g.Field().Coords(i)
		break
	}
	require.NoError(t, g.Reveal(mx, my))
	assert.Contains(t, g.Render(), "X")
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not set up", NotSetUp.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
