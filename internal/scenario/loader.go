// internal/scenario/loader.go
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bunker-game/bunker-service/internal/models"
)

// Load reads the scenario content file and validates it. Any failure
// is fatal for the caller: the service must not run without scenarios.
func Load(path string) ([]models.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenarios []models.Scenario
	if err := json.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s contains no scenarios", path)
	}

	for i, s := range scenarios {
		if err := validate(s); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.ID, err)
		}
	}
	return scenarios, nil
}

func validate(s models.Scenario) error {
	if s.ID == "" {
		return fmt.Errorf("missing id")
	}
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}
	if s.WinCondition.Type == "" {
		return fmt.Errorf("missing win_condition type")
	}
	if len(s.Characteristics) == 0 {
		return fmt.Errorf("no characteristics defined")
	}
	for name, values := range s.Characteristics {
		if len(values) == 0 {
			return fmt.Errorf("characteristic %q has no candidate values", name)
		}
	}
	return nil
}
