package conditionals

// ConditionalWhen defines the conditions that must all hold for a conditional to trigger.
type ConditionalWhen struct {
	Location string          `json:"location,omitempty" yaml:"location,omitempty"`   // Player must be in this room
	Items    []string        `json:"items,omitempty" yaml:"items,omitempty"`         // Player must carry every item
	Flags    map[string]bool `json:"flags,omitempty" yaml:"flags,omitempty"`         // Every flag must have the given value
	MinScore *int            `json:"min_score,omitempty" yaml:"min_score,omitempty"` // Score >= this value
	MinMoves *int            `json:"min_moves,omitempty" yaml:"min_moves,omitempty"` // Move counter >= this value
	MinItems *int            `json:"min_items,omitempty" yaml:"min_items,omitempty"` // Carrying at least this many items
	Visited  []string        `json:"visited,omitempty" yaml:"visited,omitempty"`     // Every room must have been seen
}

// IsEmpty reports whether the clause names no condition at all.
func (w ConditionalWhen) IsEmpty() bool {
	return w.Location == "" &&
		len(w.Items) == 0 &&
		len(w.Flags) == 0 &&
		w.MinScore == nil &&
		w.MinMoves == nil &&
		w.MinItems == nil &&
		len(w.Visited) == 0
}

// GameStateView provides the minimal interface needed to evaluate conditionals
// This avoids import cycles with the state package
type GameStateView interface {
	GetLocation() string
	HasItem(id string) bool
	GetFlags() map[string]bool
	GetScore() int
	GetMoves() int
	CarriedCount() int
	HasVisited(room string) bool
}

// EvaluateWhen checks if all conditions in a When clause are met
func EvaluateWhen(when ConditionalWhen, gsView GameStateView) bool {
	// An empty clause never triggers
	if when.IsEmpty() {
		return false
	}

	if when.Location != "" && gsView.GetLocation() != when.Location {
		return false
	}

	for _, item := range when.Items {
		if !gsView.HasItem(item) {
			return false
		}
	}

	if len(when.Flags) > 0 {
		flags := gsView.GetFlags()
		for name, want := range when.Flags {
			// A missing flag reads as false
			if flags[name] != want {
				return false
			}
		}
	}

	if when.MinScore != nil && gsView.GetScore() < *when.MinScore {
		return false
	}

	if when.MinMoves != nil && gsView.GetMoves() < *when.MinMoves {
		return false
	}

	if when.MinItems != nil && gsView.CarriedCount() < *when.MinItems {
		return false
	}

	for _, room := range when.Visited {
		if !gsView.HasVisited(room) {
			return false
		}
	}

	return true
}
