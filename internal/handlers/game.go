// internal/handlers/game.go
package handlers

import (
	"fmt"
	"net/http"
)

// StartGameHandler starts the game in the caller's lobby. Only the
// owner may start; everyone else gets a Forbidden response.
func (s *Server) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}

	if _, err := s.Service.StartGame(r.Context(), req.UserID); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: "Игра началась!",
		Menu:    s.mainMenu(r.Context(), req.UserID),
	})
}

// RevealHandler discloses one of the caller's card names to the lobby.
// Re-revealing the same name is a no-op reported as "no change".
func (s *Server) RevealHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if req.Name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	changed, err := s.Service.RevealValue(r.Context(), req.UserID, req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	msg := fmt.Sprintf("Вы раскрыли %s", req.Name)
	if !changed {
		msg = "Ничего не изменилось"
	}
	writeJSON(w, http.StatusOK, actionResponse{
		Message: msg,
		Menu:    s.mainMenu(r.Context(), req.UserID),
	})
}

// PlayerInfoHandler renders the caller's own card, unmasked, along
// with the names still available to reveal.
func (s *Server) PlayerInfoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	info, err := s.Service.PlayerInfo(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var choices []string
	if l, err := s.Service.GetByUser(r.Context(), userID); err == nil {
		if p := l.FindPlayer(userID); p != nil && p.Cards != nil {
			choices = p.Cards.UnrevealedNames()
		}
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: info,
		Menu:    s.mainMenu(r.Context(), userID),
		Choices: choices,
	})
}

// BunkerInfoHandler renders the scenario snapshot of the caller's game.
func (s *Server) BunkerInfoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	info, err := s.Service.BunkerInfo(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		Message: info,
		Menu:    s.mainMenu(r.Context(), userID),
	})
}
