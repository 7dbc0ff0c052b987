// internal/lobby/cards_test.go
package lobby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunker-game/bunker-service/internal/models"
)

func TestAssignCards(t *testing.T) {
	sc := testScenario()
	l := &models.Lobby{
		Code:  "ab12cd",
		Owner: models.Player{UserID: 1, Username: "Alice"},
		Players: []models.Player{
			{UserID: 1, Username: "Alice"},
			{UserID: 2, Username: "Bob"},
		},
		Started: true,
	}

	assignCards(l, sc)

	require.NotNil(t, l.Bunker)
	assert.Equal(t, sc.ID, l.Bunker.ScenarioID)
	assert.Equal(t, sc.Name, l.Bunker.ScenarioName)
	assert.Equal(t, sc.Description, l.Bunker.ScenarioDescription)
	assert.Equal(t, sc.BunkerFeatures, l.Bunker.Features)

	for _, p := range l.Players {
		require.NotNil(t, p.Cards)
		require.Len(t, p.Cards.Characteristics, len(sc.Characteristics))
		for name, value := range p.Cards.Characteristics {
			assert.Contains(t, sc.Characteristics[name], value)
		}
		assert.Equal(t, sc.Items, p.Cards.Items)
		assert.Equal(t, sc.SpecialCards, p.Cards.SpecialCards)
		assert.Empty(t, p.Cards.RevealedValues)
	}
}

func TestAssignCardsSnapshotsScenario(t *testing.T) {
	sc := testScenario()
	l := &models.Lobby{
		Code:    "ab12cd",
		Owner:   models.Player{UserID: 1, Username: "Alice"},
		Players: []models.Player{{UserID: 1, Username: "Alice"}},
	}

	assignCards(l, sc)

	// Editing the scenario after assignment must not reach the lobby.
	sc.BunkerFeatures[0].Name = "changed"
	sc.Items[0].Name = "changed"

	assert.Equal(t, "Генератор", l.Bunker.Features[0].Name)
	assert.Equal(t, "Аптечка", l.Players[0].Cards.Items[0].Name)
}

func TestDrawCharacteristics(t *testing.T) {
	src := map[string][]string{
		"Профессия": {"Врач", "Инженер", "Повар"},
		"Возраст":   {"25"},
	}

	got := drawCharacteristics(src)

	require.Len(t, got, 2)
	assert.Contains(t, src["Профессия"], got["Профессия"])
	assert.Equal(t, "25", got["Возраст"])
}
