// internal/lobby/render.go
package lobby

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bunker-game/bunker-service/internal/models"
)

const maskedValue = "неизвестно"

// LobbyInfo renders the roster as seen by userID: every player's card
// is shown with unrevealed entries masked. Players without cards (game
// not started, or the card write never landed) render as name only.
func (s *Service) LobbyInfo(ctx context.Context, userID int64) (string, error) {
	l, err := s.reg.GetByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏠 Лобби: %s\n👑 Владелец: %s\n\nИгроки:", l.Code, l.Owner.Username)
	for _, p := range l.Players {
		b.WriteString("\n\n📌 " + p.Username)
		if p.Cards != nil {
			writeCard(&b, p.Cards, true)
		}
	}
	return b.String(), nil
}

// PlayerInfo renders the caller's own card with nothing masked.
func (s *Service) PlayerInfo(ctx context.Context, userID int64) (string, error) {
	l, err := s.reg.GetByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	p := l.FindPlayer(userID)
	if p == nil {
		return "", notFound(msgPlayerNotInLobby)
	}

	var b strings.Builder
	b.WriteString(p.Username)
	if p.Cards != nil {
		writeCard(&b, p.Cards, false)
	}
	return b.String(), nil
}

// BunkerInfo renders the scenario snapshot of a started game.
func (s *Service) BunkerInfo(ctx context.Context, userID int64) (string, error) {
	l, err := s.reg.GetByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if l.Bunker == nil {
		// Either the game has not started or the card-assignment write
		// never landed; render a placeholder instead of failing.
		return "🏰 Бункер\n\nСценарий ещё не подготовлен", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏰 Бункер\n\nСценарий: %s\n\n%s", l.Bunker.ScenarioName, l.Bunker.ScenarioDescription)
	if len(l.Bunker.Features) > 0 {
		b.WriteString("\n\nОсобенности бункера:")
		for _, f := range l.Bunker.Features {
			fmt.Fprintf(&b, "\n• %s: %s", f.Name, f.Description)
		}
	}
	return b.String(), nil
}

// writeCard appends the card's sections to b. When masked, values not
// yet revealed render as the placeholder. Characteristic keys are
// sorted for stable output.
func writeCard(b *strings.Builder, card *models.PlayerCard, masked bool) {
	if len(card.Characteristics) > 0 {
		keys := make([]string, 0, len(card.Characteristics))
		for k := range card.Characteristics {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\nХарактеристики:")
		for _, k := range keys {
			v := card.Characteristics[k]
			if masked && !card.Revealed(k) {
				v = maskedValue
			}
			fmt.Fprintf(b, "\n• %s: %s", k, v)
		}
	}

	if len(card.Items) > 0 {
		b.WriteString("\nПредметы:")
		for _, item := range card.Items {
			name := item.Name
			if masked && !card.Revealed(item.Name) {
				name = maskedValue
			}
			fmt.Fprintf(b, "\n• %s", name)
		}
	}

	if len(card.SpecialCards) > 0 {
		b.WriteString("\nСпец. карты:")
		for _, sc := range card.SpecialCards {
			name := sc.Name
			if masked && !card.Revealed(sc.Name) {
				name = maskedValue
			}
			fmt.Fprintf(b, "\n• %s", name)
		}
	}
}
