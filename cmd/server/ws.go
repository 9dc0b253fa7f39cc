package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/minebound/minesweeper/internal/game"
	"github.com/minebound/minesweeper/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("ws origin: ", r.Host)
		return true
	},
}

// handleConnectWs plays a session over a WebSocket using the same text
// protocol as the interactive driver: newline-separated commands in,
// the rendered grid and status out.
func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	s, err := store.Get(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		text := strings.TrimSpace(string(message))
		log.Debug("> ", text)
		for _, line := range byPiece(text, "\n") {
			if done := playLine(c, s, line); done {
				return
			}
		}
	}
}

func playLine(c *websocket.Conn, s *session.Session, line string) (done bool) {
	s.Lock()
	defer s.Unlock()

	quit, err := game.ExecuteCommand(s.Game, line)
	if err != nil {
		if werr := c.WriteMessage(
			websocket.TextMessage, []byte("error: "+err.Error()),
		); werr != nil {
			log.Error("write: ", werr)
			return true
		}
		return false
	}
	if quit {
		return true
	}
	reply := s.Game.Render() + s.Game.Status().String()
	if err := c.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
		log.Error("write: ", err)
		return true
	}
	if s.Game.Over() {
		s.End()
		return true
	}
	return false
}
