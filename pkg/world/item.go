package world

import "strings"

// ItemID is the stable key of an item.
type ItemID string

// Reveal names the condition that keeps an item out of sight.
type Reveal string

const (
	RevealNone  Reveal = ""
	RevealDig   Reveal = "dig"   // Hidden until the room's dig site is dug
	RevealLight Reveal = "light" // Hidden until an active light source is present
)

// Item is an interactive object. Items are never destroyed; they move between rooms,
// the inventory, and the removed pile.
type Item struct {
	ID          ItemID     `json:"id" yaml:"id" validate:"required,snake"`
	Name        string     `json:"name" yaml:"name" validate:"required"`
	Aliases     []string   `json:"aliases,omitempty" yaml:"aliases,omitempty" validate:"dive,required"`
	Description string     `json:"description" yaml:"description" validate:"required"`
	Takeable    bool       `json:"takeable,omitempty" yaml:"takeable,omitempty"`
	LightSource bool       `json:"light_source,omitempty" yaml:"light_source,omitempty"`
	Tool        bool       `json:"tool,omitempty" yaml:"tool,omitempty"` // Can dig
	HiddenUntil Reveal     `json:"hidden_until,omitempty" yaml:"hidden_until,omitempty" validate:"omitempty,oneof=dig light"`
	Points      int        `json:"points,omitempty" yaml:"points,omitempty" validate:"gte=0"` // Awarded the first time it is taken
	Use         *UseEffect `json:"use,omitempty" yaml:"use,omitempty"`
	Art         string     `json:"art,omitempty" yaml:"art,omitempty"` // Picture shown on examine
}

// UseEffect describes what happens when a non-light, non-tool item is used.
type UseEffect struct {
	Message  string `json:"message" yaml:"message" validate:"required"`
	Points   int    `json:"points,omitempty" yaml:"points,omitempty" validate:"gte=0"`
	Consumes bool   `json:"consumes,omitempty" yaml:"consumes,omitempty"` // Item leaves play after use
}

// Names returns every lower-cased string the item answers to: id, name, then aliases.
func (it *Item) Names() []string {
	names := []string{strings.ToLower(string(it.ID)), strings.ToLower(it.Name)}
	for _, a := range it.Aliases {
		names = append(names, strings.ToLower(a))
	}
	return names
}

// LitFlag is the game state flag that records the item being switched on.
func (it *Item) LitFlag() string {
	return string(it.ID) + "_on"
}

// Usable reports whether the item does anything when used.
func (it *Item) Usable() bool {
	return it.LightSource || it.Tool || it.Use != nil
}
