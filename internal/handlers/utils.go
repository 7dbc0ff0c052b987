// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bunker-game/bunker-service/internal/lobby"
)

// actionRequest is the common body of the POST action endpoints. The
// transport supplies the stable user id; there is no further identity.
type actionRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name,omitempty"`
}

// actionResponse is what the chat front end renders: a display string
// and the keyboard of actions valid in the user's current state.
type actionResponse struct {
	Message string   `json:"message"`
	Menu    []string `json:"menu,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeAction(w http.ResponseWriter, r *http.Request) (*actionRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request payload", http.StatusBadRequest)
		return nil, false
	}
	if req.UserID <= 0 {
		http.Error(w, "missing user_id", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

// queryUserID parses user_id from the query string of GET endpoints.
func queryUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "missing user_id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an error kind to an HTTP status and renders the
// user-facing message. Internal detail never reaches the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "Ошибка. Попробуйте позже"

	var e *lobby.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case lobby.KindNotFound:
			status = http.StatusNotFound
			msg = e.UserMessage()
		case lobby.KindBadRequest:
			status = http.StatusBadRequest
			msg = e.UserMessage()
		case lobby.KindForbidden:
			status = http.StatusForbidden
			msg = e.UserMessage()
		case lobby.KindInternal:
			s.Log.WithError(err).Error("internal error")
		}
	} else {
		s.Log.WithError(err).Error("unclassified error")
	}

	writeJSON(w, status, errorResponse{Error: msg})
}
