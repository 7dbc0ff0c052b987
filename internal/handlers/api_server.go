// internal/handlers/api_server.go
package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/bunker-game/bunker-service/internal/lobby"
	"github.com/bunker-game/bunker-service/internal/notify"
)

// Server is the HTTP action layer in front of the lobby service. It
// translates transport requests into service operations and renders
// every outcome as a displayable message plus an action menu.
type Server struct {
	Service *lobby.Service
	Hub     *notify.Hub
	Log     *logrus.Logger
}

// NewServer wires the action layer.
func NewServer(svc *lobby.Service, hub *notify.Hub, logger *logrus.Logger) *Server {
	return &Server{
		Service: svc,
		Hub:     hub,
		Log:     logger,
	}
}

// Routes builds the endpoint mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/lobby/create", s.CreateLobbyHandler)
	mux.HandleFunc("/lobby/join", s.JoinLobbyHandler)
	mux.HandleFunc("/lobby/leave", s.LeaveLobbyHandler)
	mux.HandleFunc("/lobby/start", s.StartGameHandler)
	mux.HandleFunc("/lobby/reveal", s.RevealHandler)
	mux.HandleFunc("/lobby/info", s.LobbyInfoHandler)

	mux.HandleFunc("/player/info", s.PlayerInfoHandler)
	mux.HandleFunc("/bunker/info", s.BunkerInfoHandler)

	mux.HandleFunc("/ws", s.NotificationWSHandler)

	return mux
}
