package state

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

var (
	ErrInvalidMove = errors.New("invalid item move")
	ErrInvariant   = errors.New("game state invariant violated")
)

// GameState is the mutable state of one play session: where the player is, where every
// item is, and the score and flags earned so far.
type GameState struct {
	ID        uuid.UUID              `json:"id"`              // Unique ID per session
	World     string                 `json:"world"`           // ID of the world being played
	Location  world.RoomID           `json:"location"`        // Current room
	Items     map[world.ItemID]Place `json:"items"`           // The one place every item is in
	Score     int                    `json:"score"`           //
	Moves     int                    `json:"moves"`           // Successful moves between rooms
	Flags     map[string]bool        `json:"flags,omitempty"` // e.g. lamp_on, hole_dug, treasure_found
	Visited   map[world.RoomID]bool  `json:"visited,omitempty"`
	Dug       map[world.RoomID]bool  `json:"dug,omitempty"`
	Revealed  map[world.ItemID]bool  `json:"revealed,omitempty"` // Hidden items uncovered for good
	Awarded   map[string]bool        `json:"awarded,omitempty"`  // Point awards already given
	GameOver  bool                   `json:"game_over"`
	Won       bool                   `json:"won"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// NewGameState places the player and every item where the world says they start.
func NewGameState(w *world.World) *GameState {
	gs := &GameState{
		ID:        uuid.New(),
		World:     w.ID,
		Location:  w.Start,
		Items:     make(map[world.ItemID]Place, len(w.Items)),
		Flags:     make(map[string]bool),
		Visited:   make(map[world.RoomID]bool),
		Dug:       make(map[world.RoomID]bool),
		Revealed:  make(map[world.ItemID]bool),
		Awarded:   make(map[string]bool),
		CreatedAt: time.Now(),
	}
	for _, r := range w.Rooms {
		for _, id := range r.Items {
			gs.Items[id] = InRoom(r.ID)
		}
	}
	for _, id := range w.StartInventory {
		gs.Items[id] = Carried
	}
	gs.UpdatedAt = gs.CreatedAt
	return gs
}

// MoveItem relocates an item, failing if it is not currently at from.
func (gs *GameState) MoveItem(id world.ItemID, from, to Place) error {
	current, ok := gs.Items[id]
	if !ok {
		return fmt.Errorf("%w: item %q has no place", ErrInvalidMove, id)
	}
	if current != from {
		return fmt.Errorf("%w: item %q is in %s, not %s", ErrInvalidMove, id, current, from)
	}
	gs.Items[id] = to
	return nil
}

// PlaceOf returns where an item currently is.
func (gs *GameState) PlaceOf(id world.ItemID) (Place, bool) {
	p, ok := gs.Items[id]
	return p, ok
}

// ItemsAt returns the items at place, in world catalog order.
func (gs *GameState) ItemsAt(w *world.World, place Place) []*world.Item {
	var items []*world.Item
	for i := range w.Items {
		if gs.Items[w.Items[i].ID] == place {
			items = append(items, &w.Items[i])
		}
	}
	return items
}

// Inventory returns the carried items, in world catalog order.
func (gs *GameState) Inventory(w *world.World) []*world.Item {
	return gs.ItemsAt(w, Carried)
}

// Carries reports whether the player holds the item.
func (gs *GameState) Carries(id world.ItemID) bool {
	return gs.Items[id] == Carried
}

// Reveal marks a hidden item as uncovered. It stays visible wherever it is later dropped.
func (gs *GameState) Reveal(id world.ItemID) {
	if gs.Revealed == nil {
		gs.Revealed = make(map[world.ItemID]bool)
	}
	gs.Revealed[id] = true
}

// SetFlag sets or clears a named flag.
func (gs *GameState) SetFlag(name string, value bool) {
	if gs.Flags == nil {
		gs.Flags = make(map[string]bool)
	}
	if value {
		gs.Flags[name] = true
		return
	}
	delete(gs.Flags, name)
}

// HasFlag reports whether a flag is set.
func (gs *GameState) HasFlag(name string) bool {
	return gs.Flags[name]
}

// Award adds points for key the first time it is called and reports whether it did.
func (gs *GameState) Award(key string, points int) bool {
	if gs.Awarded == nil {
		gs.Awarded = make(map[string]bool)
	}
	if gs.Awarded[key] {
		return false
	}
	gs.Awarded[key] = true
	gs.Score += points
	return true
}

// MarkVisited records a visit and reports whether it was the first.
func (gs *GameState) MarkVisited(id world.RoomID) bool {
	if gs.Visited == nil {
		gs.Visited = make(map[world.RoomID]bool)
	}
	first := !gs.Visited[id]
	gs.Visited[id] = true
	return first
}

// Validate checks the state against its world: the player is in a real room and every
// item of the world is in exactly one real place.
func (gs *GameState) Validate(w *world.World) error {
	var errs []error
	if gs.World != w.ID {
		errs = append(errs, fmt.Errorf("state belongs to world %q, not %q", gs.World, w.ID))
	}
	if !w.HasRoom(gs.Location) {
		errs = append(errs, fmt.Errorf("player is in undefined room %q", gs.Location))
	}
	for _, it := range w.Items {
		if _, ok := gs.Items[it.ID]; !ok {
			errs = append(errs, fmt.Errorf("item %q has no place", it.ID))
		}
	}
	for id, p := range gs.Items {
		if !w.HasItem(id) {
			errs = append(errs, fmt.Errorf("placement for undefined item %q", id))
		}
		switch p.Kind {
		case PlaceRoom:
			if !w.HasRoom(p.Room) {
				errs = append(errs, fmt.Errorf("item %q is in undefined room %q", id, p.Room))
			}
		case PlaceInventory, PlaceRemoved:
			if p.Room != "" {
				errs = append(errs, fmt.Errorf("item %q has a room in %s", id, p.Kind))
			}
		default:
			errs = append(errs, fmt.Errorf("item %q has unknown place kind %q", id, p.Kind))
		}
	}
	for id := range gs.Revealed {
		if !w.HasItem(id) {
			errs = append(errs, fmt.Errorf("undefined item %q is revealed", id))
		}
	}
	if gs.Won && !gs.GameOver {
		errs = append(errs, errors.New("game is won but not over"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvariant, errors.Join(errs...))
	}
	return nil
}

// Clone returns a deep copy of the state.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.Items = maps.Clone(gs.Items)
	c.Flags = maps.Clone(gs.Flags)
	c.Visited = maps.Clone(gs.Visited)
	c.Dug = maps.Clone(gs.Dug)
	c.Revealed = maps.Clone(gs.Revealed)
	c.Awarded = maps.Clone(gs.Awarded)
	return &c
}

// GameStateView implementation for conditionals

func (gs *GameState) GetLocation() string { return string(gs.Location) }

func (gs *GameState) HasItem(id string) bool { return gs.Carries(world.ItemID(id)) }

func (gs *GameState) GetFlags() map[string]bool { return gs.Flags }

func (gs *GameState) GetScore() int { return gs.Score }

func (gs *GameState) GetMoves() int { return gs.Moves }

func (gs *GameState) CarriedCount() int {
	n := 0
	for _, p := range gs.Items {
		if p == Carried {
			n++
		}
	}
	return n
}

func (gs *GameState) HasVisited(room string) bool { return gs.Visited[world.RoomID(room)] }
