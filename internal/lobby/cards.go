// internal/lobby/cards.go
package lobby

import (
	"math/rand/v2"

	"github.com/bunker-game/bunker-service/internal/models"
)

// assignCards snapshots the scenario into the lobby's bunker and deals
// a character card to every player. Characteristic draws are uniform
// and independent per player, so two players may share a value. Items
// and special cards are attached verbatim from the scenario: every
// player currently receives the same lists.
func assignCards(l *models.Lobby, sc models.Scenario) {
	l.Bunker = &models.Bunker{
		ScenarioID:          sc.ID,
		ScenarioName:        sc.Name,
		ScenarioDescription: sc.Description,
		Features:            append([]models.BunkerFeature(nil), sc.BunkerFeatures...),
	}

	for i := range l.Players {
		l.Players[i].Cards = &models.PlayerCard{
			Characteristics: drawCharacteristics(sc.Characteristics),
			Items:           append([]models.Item(nil), sc.Items...),
			SpecialCards:    append([]models.SpecialCard(nil), sc.SpecialCards...),
			RevealedValues:  []string{},
		}
	}
}

// drawCharacteristics picks one value per characteristic key uniformly
// at random from its candidate list. The key set is fixed here and
// never resized afterwards.
func drawCharacteristics(src map[string][]string) map[string]string {
	out := make(map[string]string, len(src))
	for name, values := range src {
		out[name] = values[rand.IntN(len(values))]
	}
	return out
}
