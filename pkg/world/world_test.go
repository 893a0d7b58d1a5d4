package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/conditionals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minScore(n int) *int { return &n }

// testWorld returns a small valid world that tests can break in one place.
func testWorld() *World {
	return &World{
		ID:    "test_world",
		Name:  "Test World",
		Start: "hall",
		Rooms: []Room{
			{ID: "hall", Name: "Hall", Description: "A long hall.", Exits: map[Direction]RoomID{North: "vault"}, Items: []ItemID{"torch"}},
			{ID: "vault", Name: "Vault", Description: "A vault.", Exits: map[Direction]RoomID{South: "hall"}, Items: []ItemID{"gem"}},
		},
		Items: []Item{
			{ID: "torch", Name: "torch", Description: "A torch.", Takeable: true, LightSource: true},
			{ID: "gem", Name: "gem", Description: "A gem.", Takeable: true},
		},
		WinConditions: []WinCondition{
			{ID: "got_gem", When: conditionals.ConditionalWhen{Items: []string{"gem"}}, Message: "You win."},
		},
	}
}

func TestBuiltinDunnetIsValid(t *testing.T) {
	w, err := Builtin("dunnet")
	require.NoError(t, err)

	assert.Equal(t, RoomID("driveway"), w.Start)
	for _, r := range w.Rooms {
		for dir, to := range r.Exits {
			assert.Truef(t, w.HasRoom(to), "room %s exit %s points at undefined room %s", r.ID, dir, to)
		}
	}

	garden, err := w.Room("garden")
	require.NoError(t, err)
	require.NotNil(t, garden.Dig)
	assert.Equal(t, "hole_dug", garden.Dig.Flag)

	lamp, err := w.Item("lamp")
	require.NoError(t, err)
	assert.True(t, lamp.LightSource)
	assert.Equal(t, "lamp_on", lamp.LitFlag())

	names := make([]string, len(w.Achievements))
	for i, a := range w.Achievements {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"Item Collector", "Explorer", "Detective", "Pack Rat", "Secret Finder"}, names)
}

func TestBuiltinIDs(t *testing.T) {
	assert.Contains(t, BuiltinIDs(), "dunnet")

	_, err := Builtin("atlantis")
	assert.Error(t, err)
}

func TestWorld_Lookup(t *testing.T) {
	w := testWorld()
	require.NoError(t, w.Validate())

	_, err := w.Room("attic")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = w.Item("sword")
	assert.ErrorIs(t, err, ErrItemNotFound)

	hall, err := w.Room("hall")
	require.NoError(t, err)
	assert.Equal(t, []Direction{North}, hall.ExitDirections())
}

func TestWorld_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(w *World)
		wantErr error
	}{
		{
			name:   "valid world",
			mutate: func(w *World) {},
		},
		{
			name: "dangling exit",
			mutate: func(w *World) {
				w.Rooms[0].Exits[East] = "kitchen"
			},
			wantErr: ErrDanglingExit,
		},
		{
			name: "item without a starting place",
			mutate: func(w *World) {
				w.Rooms[1].Items = nil
			},
			wantErr: ErrInvalidWorld,
		},
		{
			name: "room lists undefined item",
			mutate: func(w *World) {
				w.Rooms[1].Items = append(w.Rooms[1].Items, "crown")
			},
			wantErr: ErrUnknownItem,
		},
		{
			name: "duplicate room id",
			mutate: func(w *World) {
				w.Rooms = append(w.Rooms, Room{ID: "hall", Name: "Hall", Description: "Again."})
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "duplicate item id",
			mutate: func(w *World) {
				w.Items = append(w.Items, Item{ID: "gem", Name: "gem", Description: "Another gem."})
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "unknown start room",
			mutate: func(w *World) {
				w.Start = "porch"
			},
			wantErr: ErrUnknownRoom,
		},
		{
			name: "gate without exit",
			mutate: func(w *World) {
				w.Rooms[0].Gates = map[Direction]Gate{West: {Flag: "door_open"}}
			},
			wantErr: ErrDanglingExit,
		},
		{
			name: "win condition names undefined room",
			mutate: func(w *World) {
				w.WinConditions[0].When.Location = "throne"
			},
			wantErr: ErrUnknownRoom,
		},
		{
			name: "empty win condition",
			mutate: func(w *World) {
				w.WinConditions[0].When = conditionals.ConditionalWhen{}
			},
			wantErr: ErrInvalidWorld,
		},
		{
			name: "bad direction key",
			mutate: func(w *World) {
				w.Rooms[0].Exits["sideways"] = "vault"
			},
			wantErr: ErrInvalidWorld,
		},
		{
			name: "non snake case id",
			mutate: func(w *World) {
				w.Items[1].ID = "Big-Gem"
				w.Rooms[1].Items = []ItemID{"Big-Gem"}
				w.WinConditions[0].When.Items = []string{"Big-Gem"}
			},
			wantErr: ErrInvalidWorld,
		},
		{
			name: "dig reveals item that is not hidden",
			mutate: func(w *World) {
				w.Rooms[1].Dig = &DigSite{Message: "You dig.", Reveals: []ItemID{"gem"}}
			},
			wantErr: ErrInvalidWorld,
		},
		{
			name: "achievement visits undefined room",
			mutate: func(w *World) {
				w.Achievements = []Achievement{{ID: "explorer", Name: "Explorer", When: conditionals.ConditionalWhen{Visited: []string{"throne"}}}}
			},
			wantErr: ErrUnknownRoom,
		},
		{
			name: "duplicate achievement",
			mutate: func(w *World) {
				a := Achievement{ID: "explorer", Name: "Explorer", When: conditionals.ConditionalWhen{Visited: []string{"vault"}}}
				w.Achievements = []Achievement{a, a}
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "empty achievement",
			mutate: func(w *World) {
				w.Achievements = []Achievement{{ID: "nothing", Name: "Nothing"}}
			},
			wantErr: ErrInvalidWorld,
		},
		{
			name: "missing win conditions",
			mutate: func(w *World) {
				w.WinConditions = nil
			},
			wantErr: ErrInvalidWorld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld()
			tt.mutate(w)
			err := w.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v in %v", tt.wantErr, err)
			assert.ErrorIs(t, err, ErrInvalidWorld)
		})
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte(`{"id":"x","name":"X","start":"a","colour":"blue"}`), FormatJSON)
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	doc := `
id: tiny
name: Tiny
start: cell
rooms:
  - id: cell
    name: Cell
    description: A damp cell.
    exits:
      up: yard
    items: [spoon]
  - id: yard
    name: Yard
    description: An open yard.
    exits:
      down: cell
items:
  - id: spoon
    name: spoon
    description: A bent spoon.
    takeable: true
    tool: true
win_conditions:
  - id: escaped
    when:
      location: yard
      items: [spoon]
      min_score: 0
    message: You escaped.
`
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", w.ID)

	cell, err := w.Room("cell")
	require.NoError(t, err)
	to, ok := cell.Exit(Up)
	assert.True(t, ok)
	assert.Equal(t, RoomID("yard"), to)
	assert.Equal(t, minScore(0), w.WinConditions[0].When.MinScore)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("world.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFor("world.toml")
	assert.Error(t, err)
	assert.False(t, IsWorldFile("notes.txt"))
}
