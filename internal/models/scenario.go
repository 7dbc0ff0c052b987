// internal/models/scenario.go
package models

// Scenario is read-only reference content describing one game setting.
// Scenarios are loaded once at startup and never mutated afterwards.
type Scenario struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	WinCondition    WinCondition        `json:"win_condition"`
	Characteristics map[string][]string `json:"characteristics"`
	Items           []Item              `json:"items"`
	BunkerFeatures  []BunkerFeature     `json:"bunker_features"`
	SpecialCards    []SpecialCard       `json:"special_cards"`
	BaseActions     []BaseAction        `json:"base_actions"`
}

// WinCondition describes how a scenario is won, e.g. {"survive_days", 90}.
type WinCondition struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// Item is a usable object dealt to players when the game starts.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Actions     []Action `json:"actions"`
}

// Action is an effect an item grants. DiceRange is nil for actions
// that do not involve a roll.
type Action struct {
	Type      string `json:"type"`
	DiceRange []int  `json:"dice_range"`
}

// BunkerFeature is one name/description pair of the scenario's bunker.
type BunkerFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SpecialCard is a one-shot ability card dealt to players.
type SpecialCard struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Actions     []SpecialCardAction `json:"actions"`
}

// SpecialCardAction is the effect type of a special card.
type SpecialCardAction struct {
	Type string `json:"type"`
}

// BaseAction is an action available to every player regardless of cards.
type BaseAction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
