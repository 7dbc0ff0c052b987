// internal/scenario/loader_test.go
package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContent = `[
  {
    "id": "test",
    "name": "Тест",
    "description": "Тестовый сценарий",
    "win_condition": { "type": "survive_days", "value": 30 },
    "characteristics": {
      "Профессия": ["Врач", "Инженер"]
    },
    "items": [
      { "name": "Аптечка", "description": "Набор первой помощи", "actions": [{ "type": "heal", "dice_range": [1, 6] }] }
    ],
    "bunker_features": [
      { "name": "Генератор", "description": "Топлива на 60 дней" }
    ],
    "special_cards": [],
    "base_actions": []
  }
]`

func writeContent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	scenarios, err := Load(writeContent(t, validContent))
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	s := scenarios[0]
	assert.Equal(t, "test", s.ID)
	assert.Equal(t, "survive_days", s.WinCondition.Type)
	assert.Equal(t, 30, s.WinCondition.Value)
	assert.Equal(t, []string{"Врач", "Инженер"}, s.Characteristics["Профессия"])
	require.Len(t, s.Items, 1)
	assert.Equal(t, []int{1, 6}, s.Items[0].Actions[0].DiceRange)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nosuch.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeContent(t, `[{"id": "broken"`))
	assert.Error(t, err)
}

func TestLoadEmptyList(t *testing.T) {
	_, err := Load(writeContent(t, `[]`))
	assert.Error(t, err)
}

func TestLoadRejectsMissingFields(t *testing.T) {
	missingID := `[{"name": "x", "description": "", "win_condition": {"type": "t", "value": 1}, "characteristics": {"a": ["b"]}}]`
	_, err := Load(writeContent(t, missingID))
	assert.Error(t, err)

	emptyValues := `[{"id": "x", "name": "x", "description": "", "win_condition": {"type": "t", "value": 1}, "characteristics": {"a": []}}]`
	_, err = Load(writeContent(t, emptyValues))
	assert.Error(t, err)

	noWinCondition := `[{"id": "x", "name": "x", "description": "", "characteristics": {"a": ["b"]}}]`
	_, err = Load(writeContent(t, noWinCondition))
	assert.Error(t, err)
}
