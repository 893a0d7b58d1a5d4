package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func handleGo(t *turn) result {
	d := t.cmd.Direction
	if d == "" {
		if t.cmd.Object == "" {
			return say("Go where?")
		}
		return say("You can't go '%s'.", t.cmd.Object)
	}

	r := t.room()
	to, ok := r.Exit(d)
	if !ok {
		return result{narration: msgCantGo}
	}
	if gate, gated := r.Gates[d]; gated && !t.gs.HasFlag(gate.Flag) {
		if gate.Reason != "" {
			return result{narration: gate.Reason}
		}
		return result{narration: msgCantGo}
	}

	if err := t.moveTo(to); err != nil {
		// Validated worlds have no dangling exits.
		return result{narration: msgCantGo}
	}
	return result{narration: t.enterRoom(), mutated: true}
}

func (t *turn) moveTo(id world.RoomID) error {
	r, err := t.w.Room(id)
	if err != nil {
		return err
	}
	t.here = r
	t.gs.Location = id
	t.gs.Moves++
	return nil
}

func handleLook(t *turn) result {
	if !t.canSee() {
		return result{narration: msgDark}
	}
	t.gs.MarkVisited(t.gs.Location)
	return result{narration: t.renderRoom(true)}
}

func handleExamine(t *turn) result {
	if t.cmd.Object == "" {
		return handleLook(t)
	}
	it, err := world.Resolve(t.cmd.Object, t.visible())
	if err != nil {
		if !t.canSee() {
			return result{narration: msgDark}
		}
		return resolveFailure(err, say(msgNotHere, t.cmd.Object).narration)
	}
	return result{narration: t.renderItem(it)}
}
