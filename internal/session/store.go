package session

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minebound/minesweeper/internal/game"
)

var ErrNotFound = errors.New("session not found")

// Session is one live game identified by a uuid. Sessions exist only in
// memory; finished games vanish with the process.
type Session struct {
	Id        string
	Game      *game.Game
	StartedAt time.Time
	EndedAt   time.Time

	mu sync.Mutex
}

// Lock serializes moves on a single session; the engine itself is not
// safe for concurrent use.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// End stamps the session's end time once, on game over.
func (s *Session) End() {
	if s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
}

type sessionJSON struct {
	SessionId string `json:"session_id"`
	Grid      string `json:"grid"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	Status    string `json:"status"`
	StartedAt int64  `json:"started_at"`
	EndedAt   *int64 `json:"ended_at,omitempty"`
}

func (s *Session) MarshalJSON() ([]byte, error) {
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	params := s.Game.Field().Params()
	return json.Marshal(sessionJSON{
		SessionId: s.Id,
		Grid:      s.Game.Render(),
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.MineCount,
		Status:    s.Game.Status().String(),
		StartedAt: s.StartedAt.UnixMilli(),
		EndedAt:   endedAt,
	})
}

// Store holds sessions keyed by id behind a mutex.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

func (st *Store) Create(g *game.Game) *Session {
	s := &Session{
		Id:        uuid.NewString(),
		Game:      g,
		StartedAt: time.Now().UTC(),
	}
	st.mu.Lock()
	st.sessions[s.Id] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes a session without checking if it existed.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
