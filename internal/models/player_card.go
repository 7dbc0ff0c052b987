// internal/models/player_card.go
package models

import "sort"

// PlayerCard is the hidden character dealt to a player when the game
// starts. Characteristics is fixed at assignment time; RevealedValues
// only ever grows.
type PlayerCard struct {
	Characteristics map[string]string `json:"characteristics"`
	Items           []Item            `json:"items"`
	SpecialCards    []SpecialCard     `json:"special_cards"`
	RevealedValues  []string          `json:"revealed_values"`
}

// Revealed reports whether the named characteristic, item or special
// card has already been disclosed to the lobby.
func (c *PlayerCard) Revealed(name string) bool {
	for _, v := range c.RevealedValues {
		if v == name {
			return true
		}
	}
	return false
}

// UnrevealedNames returns the names still hidden on this card, in a
// stable order: characteristic keys sorted, then items, then special
// cards in deal order. The display layer offers these as reveal choices.
func (c *PlayerCard) UnrevealedNames() []string {
	keys := make([]string, 0, len(c.Characteristics))
	for k := range c.Characteristics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var names []string
	for _, k := range keys {
		if !c.Revealed(k) {
			names = append(names, k)
		}
	}
	for _, item := range c.Items {
		if !c.Revealed(item.Name) {
			names = append(names, item.Name)
		}
	}
	for _, sc := range c.SpecialCards {
		if !c.Revealed(sc.Name) {
			names = append(names, sc.Name)
		}
	}
	return names
}
