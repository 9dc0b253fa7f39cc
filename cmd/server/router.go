package main

import (
	"net/http"

	"github.com/minebound/minesweeper/internal/config"
	"github.com/minebound/minesweeper/internal/middleware"
)

func buildHandler(cfg *config.Server) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/game", handleNewGame)
	mux.HandleFunc("GET /v1/game/{id}", handleGetGame)
	mux.HandleFunc("POST /v1/game/{id}/open", handleOpen)
	mux.HandleFunc("POST /v1/game/{id}/mark", handleMark)

	mux.HandleFunc("GET /v1/game/{id}/connect", handleConnectWs)

	return middleware.Wrap(mux,
		middleware.Cors(cfg.AllowedOrigins),
		middleware.Logging(log),
	)
}
