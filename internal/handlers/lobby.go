// internal/handlers/lobby.go
package handlers

import (
	"fmt"
	"net/http"
)

// CreateLobbyHandler builds a new lobby owned by the caller and
// returns the code to share.
func (s *Server) CreateLobbyHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}

	l, err := s.Service.Create(r.Context(), req.UserID, req.Username)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: fmt.Sprintf("Лобби создано!\nКод: %s\nПоделись этим кодом с друзьями", l.Code),
		Menu:    s.mainMenu(r.Context(), req.UserID),
	})
}

// JoinLobbyHandler adds the caller to the lobby with the given code.
func (s *Server) JoinLobbyHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if req.Code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	l, err := s.Service.Join(r.Context(), req.UserID, req.Username, req.Code)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: fmt.Sprintf("Вы присоединились к лобби %s", l.Code),
		Menu:    s.mainMenu(r.Context(), req.UserID),
	})
}

// LeaveLobbyHandler removes the caller from their current lobby.
func (s *Server) LeaveLobbyHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}

	if _, err := s.Service.Leave(r.Context(), req.UserID, req.Username); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: "Вы покинули лобби",
		Menu:    s.mainMenu(r.Context(), req.UserID),
	})
}

// LobbyInfoHandler renders the roster with unrevealed values masked.
func (s *Server) LobbyInfoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	info, err := s.Service.LobbyInfo(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: info,
		Menu:    s.mainMenu(r.Context(), userID),
	})
}
