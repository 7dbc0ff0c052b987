// internal/handlers/menu.go
package handlers

import (
	"context"

	"github.com/bunker-game/bunker-service/internal/lobby"
)

// Action labels offered by the chat front end as keyboard buttons.
const (
	menuCreate  = "Создать лобби"
	menuJoin    = "Присоединиться к лобби"
	menuStart   = "Начать игру"
	menuPlayers = "Список игроков"
	menuLeave   = "Выйти из лобби"

	menuMyCard    = "Мой персонаж"
	menuBunker    = "Бункер"
	menuRoster    = "Игроки"
	menuReveal    = "Раскрыть карту"
	menuLeaveGame = "Выйти из игры"
)

// mainMenu returns the actions valid for the user's current state:
// no lobby, lobby not started (owner gets the start button), or an
// in-progress game.
func (s *Server) mainMenu(ctx context.Context, userID int64) []string {
	l, err := s.Service.GetByUser(ctx, userID)
	if err != nil {
		if lobby.KindOf(err) != lobby.KindNotFound {
			s.Log.WithError(err).WithField("user_id", userID).Warn("menu lookup failed")
		}
		return []string{menuCreate, menuJoin}
	}

	if !l.Started {
		menu := []string{menuPlayers, menuLeave}
		if l.Owner.UserID == userID {
			menu = append([]string{menuStart}, menu...)
		}
		return menu
	}

	return []string{menuMyCard, menuBunker, menuRoster, menuReveal, menuLeaveGame}
}
