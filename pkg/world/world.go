package world

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/conditionals"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrItemNotFound = errors.New("item not found")
)

// World is the static definition of an adventure: its rooms, items, starting point and
// win conditions. It is immutable once validated; all per-session change lives in the
// game state.
type World struct {
	ID             string         `json:"id" yaml:"id" validate:"required,snake"`
	Name           string         `json:"name" yaml:"name" validate:"required"`
	Intro          string         `json:"intro,omitempty" yaml:"intro,omitempty"`     // Printed before the first room
	Mission        string         `json:"mission,omitempty" yaml:"mission,omitempty"` // Hint appended to help
	Start          RoomID         `json:"start" yaml:"start" validate:"required"`
	StartInventory []ItemID       `json:"start_inventory,omitempty" yaml:"start_inventory,omitempty"`
	MaxScore       int            `json:"max_score,omitempty" yaml:"max_score,omitempty" validate:"gte=0"`
	Rooms          []Room         `json:"rooms" yaml:"rooms" validate:"required,min=1,dive"`
	Items          []Item         `json:"items,omitempty" yaml:"items,omitempty" validate:"dive"`
	WinConditions  []WinCondition `json:"win_conditions" yaml:"win_conditions" validate:"required,min=1,dive"`
	Achievements   []Achievement  `json:"achievements,omitempty" yaml:"achievements,omitempty" validate:"dive"` // Listed by score while When holds

	rooms map[RoomID]*Room
	items map[ItemID]*Item
}

// WinCondition ends the game successfully once When holds after a turn.
type WinCondition struct {
	ID      string                       `json:"id" yaml:"id" validate:"required,snake"`
	When    conditionals.ConditionalWhen `json:"when" yaml:"when"`
	Message string                       `json:"message" yaml:"message" validate:"required"`
	SetFlag string                       `json:"set_flag,omitempty" yaml:"set_flag,omitempty" validate:"omitempty,snake"`
}

// Achievement is a badge shown with the score for as long as When holds. It awards nothing.
type Achievement struct {
	ID   string                       `json:"id" yaml:"id" validate:"required,snake"`
	Name string                       `json:"name" yaml:"name" validate:"required"`
	When conditionals.ConditionalWhen `json:"when" yaml:"when"`
}

// Room looks up a room by id.
func (w *World) Room(id RoomID) (*Room, error) {
	if r, ok := w.rooms[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, id)
}

// Item looks up an item by id.
func (w *World) Item(id ItemID) (*Item, error) {
	if it, ok := w.items[id]; ok {
		return it, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrItemNotFound, id)
}

// HasRoom reports whether id names a room in this world.
func (w *World) HasRoom(id RoomID) bool {
	_, ok := w.rooms[id]
	return ok
}

// HasItem reports whether id names an item in this world.
func (w *World) HasItem(id ItemID) bool {
	_, ok := w.items[id]
	return ok
}

// index builds the lookup maps. Later duplicates do not overwrite earlier entries;
// Validate reports them.
func (w *World) index() {
	w.rooms = make(map[RoomID]*Room, len(w.Rooms))
	for i := range w.Rooms {
		if _, dup := w.rooms[w.Rooms[i].ID]; !dup {
			w.rooms[w.Rooms[i].ID] = &w.Rooms[i]
		}
	}
	w.items = make(map[ItemID]*Item, len(w.Items))
	for i := range w.Items {
		if _, dup := w.items[w.Items[i].ID]; !dup {
			w.items[w.Items[i].ID] = &w.Items[i]
		}
	}
}
