package state

import "github.com/jwebster45206/adventure-engine/pkg/world"

// PlaceKind says which kind of container an item is in.
type PlaceKind string

const (
	PlaceRoom      PlaceKind = "room"
	PlaceInventory PlaceKind = "inventory"
	PlaceRemoved   PlaceKind = "removed" // Consumed or otherwise out of play
)

// Place is the location of one item. Room is set only for PlaceRoom.
type Place struct {
	Kind PlaceKind    `json:"kind"`
	Room world.RoomID `json:"room,omitempty"`
}

var (
	Carried = Place{Kind: PlaceInventory}
	Removed = Place{Kind: PlaceRemoved}
)

// InRoom is the place for an item lying in a room.
func InRoom(id world.RoomID) Place {
	return Place{Kind: PlaceRoom, Room: id}
}

func (p Place) String() string {
	if p.Kind == PlaceRoom {
		return "room " + string(p.Room)
	}
	return string(p.Kind)
}
