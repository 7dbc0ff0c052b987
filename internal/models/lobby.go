// internal/models/lobby.go
package models

// Player is a lobby member. UserID is the stable external identity and
// is unique within a lobby; Username is display-only. Cards is nil
// until the game starts.
type Player struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Cards    *PlayerCard `json:"cards"`
}

// Bunker is the scenario snapshot attached to a started lobby. The
// fields are copied from the chosen scenario at assignment time so
// later content edits cannot mutate a game in progress.
type Bunker struct {
	ScenarioID          string          `json:"scenario_id"`
	ScenarioName        string          `json:"scenario_name"`
	ScenarioDescription string          `json:"scenario_description"`
	Features            []BunkerFeature `json:"features"`
}

// Lobby is one joinable game session, stored whole at lobby:<code>.
// Invariant: Owner is always an element of Players while Players is
// non-empty; an empty lobby is deleted, never persisted.
type Lobby struct {
	Code    string   `json:"code"`
	Owner   Player   `json:"owner"`
	Players []Player `json:"players"`
	Started bool     `json:"started"`
	Bunker  *Bunker  `json:"bunker"`
}

// FindPlayer returns a pointer into Players for the given user, or nil.
func (l *Lobby) FindPlayer(userID int64) *Player {
	for i := range l.Players {
		if l.Players[i].UserID == userID {
			return &l.Players[i]
		}
	}
	return nil
}
