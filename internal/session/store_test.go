package session

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minebound/minesweeper/internal/field"
	"github.com/minebound/minesweeper/internal/game"
)

func newTestGame() *game.Game {
	params := field.Params{Width: 9, Height: 9, MineCount: 10}
	return game.New(params, rand.New(rand.NewPCG(1, 2)))
}

func TestStoreCreateAndGet(t *testing.T) {
	t.Parallel()

	st := NewStore()
	s := st.Create(newTestGame())
	require.NotEmpty(t, s.Id)
	require.False(t, s.StartedAt.IsZero())

	got, err := st.Get(s.Id)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestStoreGetMissing(t *testing.T) {
	t.Parallel()

	st := NewStore()
	_, err := st.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	st := NewStore()
	s := st.Create(newTestGame())
	st.Delete(s.Id)
	_, err := st.Get(s.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing session is fine.
	st.Delete("nope")
}

func TestSessionEndIsIdempotent(t *testing.T) {
	t.Parallel()

	st := NewStore()
	s := st.Create(newTestGame())
	s.End()
	first := s.EndedAt
	require.False(t, first.IsZero())
	s.End()
	assert.Equal(t, first, s.EndedAt)
}

func TestSessionMarshalJSON(t *testing.T) {
	t.Parallel()

	st := NewStore()
	s := st.Create(newTestGame())

	payload, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, s.Id, decoded["session_id"])
	assert.Equal(t, float64(9), decoded["width"])
	assert.Equal(t, float64(9), decoded["height"])
	assert.Equal(t, float64(10), decoded["mine_count"])
	assert.Equal(t, "not set up", decoded["status"])
	assert.NotContains(t, decoded, "ended_at")

	s.End()
	payload, err = json.Marshal(s)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Contains(t, decoded, "ended_at")
}
