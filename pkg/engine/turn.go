package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// turn is everything a handler may read or change while handling one command.
type turn struct {
	w    *world.World
	gs   *state.GameState
	cmd  command.Command
	here *world.Room // Current room; kept in step with gs.Location by moveTo
	art  string      // Picture of whatever was shown in full this turn
}

// result is a handler's outcome. mutated marks turns that may have changed the game
// state, which are the only ones checked for a win.
type result struct {
	narration string
	mutated   bool
}

func say(format string, args ...any) result {
	return result{narration: fmt.Sprintf(format, args...)}
}

func (t *turn) room() *world.Room {
	return t.here
}

// lit reports whether an active light source is carried or lying in the current room.
func (t *turn) lit() bool {
	here := state.InRoom(t.gs.Location)
	for i := range t.w.Items {
		it := &t.w.Items[i]
		if !it.LightSource || !t.gs.HasFlag(it.LitFlag()) {
			continue
		}
		if p := t.gs.Items[it.ID]; p == state.Carried || p == here {
			return true
		}
	}
	return false
}

// canSee reports whether the current room's contents are visible.
func (t *turn) canSee() bool {
	return !t.room().RequiresLight || t.lit()
}

func (t *turn) revealed(it *world.Item) bool {
	switch it.HiddenUntil {
	case world.RevealDig:
		p, _ := t.gs.PlaceOf(it.ID)
		return p.Kind != state.PlaceRoom || t.gs.Revealed[it.ID]
	case world.RevealLight:
		return t.lit()
	default:
		return true
	}
}

// roomItems returns the items in the current room the player can see.
func (t *turn) roomItems() []*world.Item {
	if !t.canSee() {
		return nil
	}
	var visible []*world.Item
	for _, it := range t.gs.ItemsAt(t.w, state.InRoom(t.gs.Location)) {
		if t.revealed(it) {
			visible = append(visible, it)
		}
	}
	return visible
}

func (t *turn) inventory() []*world.Item {
	return t.gs.Inventory(t.w)
}

// visible is the scope for name resolution: what the player can see here plus what they carry.
func (t *turn) visible() []*world.Item {
	return append(t.roomItems(), t.inventory()...)
}

// exitOpen reports whether an exit exists in direction d and is not gated shut.
func (t *turn) exitOpen(r *world.Room, d world.Direction) bool {
	if _, ok := r.Exit(d); !ok {
		return false
	}
	gate, gated := r.Gates[d]
	return !gated || t.gs.HasFlag(gate.Flag)
}

func (t *turn) openExits(r *world.Room) []world.Direction {
	var dirs []world.Direction
	for _, d := range r.ExitDirections() {
		if t.exitOpen(r, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// resolveFailure narrates a failed name resolution. notFound is used when nothing matched.
func resolveFailure(err error, notFound string) result {
	var amb *world.AmbiguousError
	if errors.As(err, &amb) {
		return say("Which do you mean: the %s?", strings.Join(amb.Names(), " or the "))
	}
	return result{narration: notFound}
}

func (r result) mutates() result {
	r.mutated = true
	return r
}
