package state

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	return world.MustBuiltin("dunnet")
}

func TestNewGameState(t *testing.T) {
	w := testWorld(t)
	gs := NewGameState(w)

	assert.Equal(t, "dunnet", gs.World)
	assert.Equal(t, world.RoomID("driveway"), gs.Location)
	assert.Equal(t, 0, gs.Score)
	assert.Equal(t, 0, gs.Moves)
	assert.Empty(t, gs.Inventory(w))
	assert.Len(t, gs.Items, len(w.Items))
	assert.Equal(t, InRoom("driveway"), gs.Items["shovel"])
	assert.Equal(t, InRoom("garden"), gs.Items["coin"])
	assert.Empty(t, gs.Revealed)
	assert.Equal(t, 0, gs.CarriedCount())
	assert.False(t, gs.HasVisited("driveway"))
	assert.NoError(t, gs.Validate(w))

	_, ok := gs.PlaceOf("sword")
	assert.False(t, ok)
}

func TestGameState_MoveItem(t *testing.T) {
	w := testWorld(t)

	tests := []struct {
		name    string
		item    world.ItemID
		from    Place
		to      Place
		wantErr bool
	}{
		{name: "take from room", item: "shovel", from: InRoom("driveway"), to: Carried},
		{name: "wrong room", item: "shovel", from: InRoom("kitchen"), to: Carried, wantErr: true},
		{name: "not carried", item: "lamp", from: Carried, to: InRoom("upstairs"), wantErr: true},
		{name: "unknown item", item: "sword", from: InRoom("driveway"), to: Carried, wantErr: true},
		{name: "remove from room", item: "food", from: InRoom("kitchen"), to: Removed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(w)
			err := gs.MoveItem(tt.item, tt.from, tt.to)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidMove), "expected ErrInvalidMove, got %v", err)
				return
			}
			require.NoError(t, err)
			p, ok := gs.PlaceOf(tt.item)
			require.True(t, ok)
			assert.Equal(t, tt.to, p)
			assert.NoError(t, gs.Validate(w))
		})
	}
}

func TestGameState_ItemsAtCatalogOrder(t *testing.T) {
	w := testWorld(t)
	gs := NewGameState(w)

	// Pick up in reverse catalog order; listing still follows the catalog.
	require.NoError(t, gs.MoveItem("water", InRoom("road"), Carried))
	require.NoError(t, gs.MoveItem("shovel", InRoom("driveway"), Carried))

	var names []world.ItemID
	for _, it := range gs.Inventory(w) {
		names = append(names, it.ID)
	}
	assert.Equal(t, []world.ItemID{"shovel", "water"}, names)
	assert.True(t, gs.HasItem("shovel"))
	assert.False(t, gs.HasItem("lamp"))
}

func TestGameState_Award(t *testing.T) {
	gs := NewGameState(testWorld(t))

	assert.True(t, gs.Award("take:shovel", 5))
	assert.False(t, gs.Award("take:shovel", 5))
	assert.True(t, gs.Award("dig:garden", 25))
	assert.Equal(t, 30, gs.Score)
}

func TestGameState_Flags(t *testing.T) {
	gs := NewGameState(testWorld(t))

	assert.False(t, gs.HasFlag("lamp_on"))
	gs.SetFlag("lamp_on", true)
	assert.True(t, gs.HasFlag("lamp_on"))
	gs.SetFlag("lamp_on", false)
	assert.False(t, gs.HasFlag("lamp_on"))
	assert.NotContains(t, gs.GetFlags(), "lamp_on")
}

func TestGameState_MarkVisited(t *testing.T) {
	gs := NewGameState(testWorld(t))

	assert.True(t, gs.MarkVisited("driveway"))
	assert.False(t, gs.MarkVisited("driveway"))
	assert.True(t, gs.MarkVisited("garden"))
}

func TestGameState_Validate(t *testing.T) {
	w := testWorld(t)

	tests := []struct {
		name   string
		mutate func(gs *GameState)
	}{
		{name: "undefined location", mutate: func(gs *GameState) { gs.Location = "attic" }},
		{name: "missing placement", mutate: func(gs *GameState) { delete(gs.Items, "lamp") }},
		{name: "undefined item", mutate: func(gs *GameState) { gs.Items["sword"] = Carried }},
		{name: "undefined room", mutate: func(gs *GameState) { gs.Items["lamp"] = InRoom("attic") }},
		{name: "inventory with room", mutate: func(gs *GameState) { gs.Items["lamp"] = Place{Kind: PlaceInventory, Room: "upstairs"} }},
		{name: "unknown kind", mutate: func(gs *GameState) { gs.Items["lamp"] = Place{Kind: "pocket"} }},
		{name: "wrong world", mutate: func(gs *GameState) { gs.World = "zork" }},
		{name: "undefined item revealed", mutate: func(gs *GameState) { gs.Reveal("sword") }},
		{name: "won but not over", mutate: func(gs *GameState) { gs.Won = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(w)
			tt.mutate(gs)
			err := gs.Validate(w)
			assert.True(t, errors.Is(err, ErrInvariant), "expected ErrInvariant, got %v", err)
		})
	}
}

func TestGameState_CloneIsDeep(t *testing.T) {
	w := testWorld(t)
	gs := NewGameState(w)
	c := gs.Clone()

	require.NoError(t, c.MoveItem("shovel", InRoom("driveway"), Carried))
	c.SetFlag("hole_dug", true)
	c.Award("dig:garden", 25)
	c.Reveal("coin")

	assert.Equal(t, InRoom("driveway"), gs.Items["shovel"])
	assert.False(t, gs.Revealed["coin"])
	assert.False(t, gs.HasFlag("hole_dug"))
	assert.Equal(t, 0, gs.Score)
}

func TestGameState_JSONRoundTripKeepsPlacement(t *testing.T) {
	w := testWorld(t)
	gs := NewGameState(w)
	require.NoError(t, gs.MoveItem("lamp", InRoom("upstairs"), Carried))
	require.NoError(t, gs.MoveItem("food", InRoom("kitchen"), Removed))

	data, err := json.Marshal(gs)
	require.NoError(t, err)

	var loaded GameState
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, Carried, loaded.Items["lamp"])
	assert.Equal(t, Removed, loaded.Items["food"])
	assert.NoError(t, loaded.Validate(w))
}
