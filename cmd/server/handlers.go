package main

import (
	"net/http"

	"github.com/minebound/minesweeper/internal/field"
	"github.com/minebound/minesweeper/internal/game"
)

type PosParams struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func handleNewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var (
		params    field.Params
		posParams PosParams
	)
	if err := dec.Decode(&params, query); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := dec.Decode(&posParams, query); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := params.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	g := game.New(params, rnd)
	if !g.ValidPoint(posParams.X, posParams.Y) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	// The first reveal also places the mines, so the starting cell is
	// always safe.
	if err := g.Reveal(posParams.X, posParams.Y); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}

	s := store.Create(g)
	if g.Over() {
		s.End()
	}
	log.Debug("created session ", s.Id)
	if _, err := sendJSON(w, s); err != nil {
		log.Error(err)
	}
}

func handleGetGame(w http.ResponseWriter, r *http.Request) {
	s, err := store.Get(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if _, err := sendJSON(w, s); err != nil {
		log.Error(err)
	}
}

func handleOpen(w http.ResponseWriter, r *http.Request) {
	handleMove(w, r, (*game.Game).Reveal)
}

func handleMark(w http.ResponseWriter, r *http.Request) {
	handleMove(w, r, (*game.Game).ToggleMark)
}

func handleMove(
	w http.ResponseWriter, r *http.Request,
	move func(*game.Game, int, int) error,
) {
	var posParams PosParams
	if err := dec.Decode(&posParams, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s, err := store.Get(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.Lock()
	defer s.Unlock()

	if !s.Game.ValidPoint(posParams.X, posParams.Y) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := move(s.Game, posParams.X, posParams.Y); err != nil {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(err.Error()))
		return
	}
	if s.Game.Over() {
		s.End()
	}
	if _, err := sendJSON(w, s); err != nil {
		log.Error(err)
	}
}
