package world

// RoomID is the stable key of a room.
type RoomID string

// Room is a node in the location graph. Its exits never change after the world is built;
// the items it holds are tracked by the game state.
type Room struct {
	ID               RoomID               `json:"id" yaml:"id" validate:"required,snake"`
	Name             string               `json:"name" yaml:"name" validate:"required"`
	Description      string               `json:"description" yaml:"description" validate:"required"`             // Shown on first visit and on look
	ShortDescription string               `json:"short_description,omitempty" yaml:"short_description,omitempty"` // Shown on revisit
	Exits            map[Direction]RoomID `json:"exits,omitempty" yaml:"exits,omitempty" validate:"dive,keys,direction,endkeys,required"`
	Gates            map[Direction]Gate   `json:"gates,omitempty" yaml:"gates,omitempty" validate:"dive,keys,direction,endkeys"` // Exits that stay shut until a flag is set
	Items            []ItemID             `json:"items,omitempty" yaml:"items,omitempty"`                                        // Items placed here when the game starts
	RequiresLight    bool                 `json:"requires_light,omitempty" yaml:"requires_light,omitempty"`
	Dig              *DigSite             `json:"dig,omitempty" yaml:"dig,omitempty"`
	Art              string               `json:"art,omitempty" yaml:"art,omitempty"` // Picture shown with the full description
}

// Gate keeps an exit closed until Flag is set in the game state.
type Gate struct {
	Flag   string `json:"flag" yaml:"flag" validate:"required,snake"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"` // Narrated instead of the default refusal
}

// DigSite marks a room where digging with a tool succeeds once.
type DigSite struct {
	Message string   `json:"message" yaml:"message" validate:"required"`
	Flag    string   `json:"flag,omitempty" yaml:"flag,omitempty" validate:"omitempty,snake"`
	Points  int      `json:"points,omitempty" yaml:"points,omitempty" validate:"gte=0"`
	Reveals []ItemID `json:"reveals,omitempty" yaml:"reveals,omitempty"`
}

// Exit returns the room reached by going d, ignoring gates.
func (r *Room) Exit(d Direction) (RoomID, bool) {
	to, ok := r.Exits[d]
	return to, ok
}

// ExitDirections returns the room's exit directions in display order.
func (r *Room) ExitDirections() []Direction {
	dirs := make([]Direction, 0, len(r.Exits))
	for _, d := range Directions {
		if _, ok := r.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
