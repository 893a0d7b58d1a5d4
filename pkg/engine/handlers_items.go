package engine

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func handleTake(t *turn) result {
	if t.cmd.Object == "" {
		return say("Take what?")
	}
	it, err := world.Resolve(t.cmd.Object, t.roomItems())
	if err != nil {
		if held, herr := world.Resolve(t.cmd.Object, t.inventory()); herr == nil {
			return say("You already have the %s.", held.Name)
		}
		if !t.canSee() {
			return result{narration: msgDark}
		}
		return resolveFailure(err, fmt.Sprintf(msgNotHere, t.cmd.Object))
	}
	if !it.Takeable {
		return say("You can't take the %s.", it.Name)
	}
	if err := t.gs.MoveItem(it.ID, state.InRoom(t.gs.Location), state.Carried); err != nil {
		return say(msgNotHere, t.cmd.Object)
	}
	t.gs.Award("take:"+string(it.ID), it.Points)
	return say("You take the %s.", it.Name).mutates()
}

func handleDrop(t *turn) result {
	if t.cmd.Object == "" {
		return say("Drop what?")
	}
	it, err := world.Resolve(t.cmd.Object, t.inventory())
	if err != nil {
		return resolveFailure(err, fmt.Sprintf(msgNotCarried, t.cmd.Object))
	}
	if err := t.gs.MoveItem(it.ID, state.Carried, state.InRoom(t.gs.Location)); err != nil {
		return say(msgNotCarried, t.cmd.Object)
	}
	return say("You drop the %s.", it.Name).mutates()
}

// carried resolves the command's object against the inventory, narrating failure.
func (t *turn) carried(what string) (*world.Item, *result) {
	if t.cmd.Object == "" {
		r := say("%s what?", what)
		return nil, &r
	}
	it, err := world.Resolve(t.cmd.Object, t.inventory())
	if err != nil {
		r := resolveFailure(err, fmt.Sprintf(msgNotCarried, t.cmd.Object))
		return nil, &r
	}
	return it, nil
}

func handleUse(t *turn) result {
	it, fail := t.carried("Use")
	if fail != nil {
		return *fail
	}
	switch {
	case it.LightSource:
		if t.gs.HasFlag(it.LitFlag()) {
			return switchOff(t, it)
		}
		return switchOn(t, it)
	case it.Tool:
		return handleDig(t)
	case it.Use != nil:
		t.gs.Award("use:"+string(it.ID), it.Use.Points)
		if it.Use.Consumes {
			if err := t.gs.MoveItem(it.ID, state.Carried, state.Removed); err != nil {
				return say(msgNotCarried, t.cmd.Object)
			}
		}
		return result{narration: it.Use.Message, mutated: true}
	default:
		return say("You can't figure out how to use the %s.", it.Name)
	}
}

func handleTurnOn(t *turn) result {
	it, fail := t.carried("Turn on")
	if fail != nil {
		return *fail
	}
	if !it.LightSource {
		return say("You can't turn on the %s.", it.Name)
	}
	if t.gs.HasFlag(it.LitFlag()) {
		return say("The %s is already on.", it.Name)
	}
	return switchOn(t, it)
}

func handleTurnOff(t *turn) result {
	it, fail := t.carried("Turn off")
	if fail != nil {
		return *fail
	}
	if !it.LightSource {
		return say("You can't turn off the %s.", it.Name)
	}
	if !t.gs.HasFlag(it.LitFlag()) {
		return say("The %s is already off.", it.Name)
	}
	return switchOff(t, it)
}

// switchOn lights a light source. If that makes a dark room visible, the room is
// described straight away.
func switchOn(t *turn, it *world.Item) result {
	wasVisible := t.canSee()
	t.gs.SetFlag(it.LitFlag(), true)
	narration := fmt.Sprintf("You turn on the %s.", it.Name)
	if !wasVisible && t.canSee() {
		t.gs.MarkVisited(t.gs.Location)
		narration += "\n\n" + t.renderRoom(true)
	}
	return result{narration: narration, mutated: true}
}

func switchOff(t *turn, it *world.Item) result {
	wasVisible := t.canSee()
	t.gs.SetFlag(it.LitFlag(), false)
	narration := fmt.Sprintf("You turn off the %s.", it.Name)
	if wasVisible && !t.canSee() {
		narration += " " + msgNowDark
	}
	return result{narration: narration, mutated: true}
}

func handleDig(t *turn) result {
	if !t.hasTool() {
		return result{narration: msgNoTool}
	}
	site := t.room().Dig
	if site == nil {
		return result{narration: msgNothingToDig}
	}
	if t.gs.Dug[t.gs.Location] {
		return result{narration: msgAlreadyDug}
	}

	if t.gs.Dug == nil {
		t.gs.Dug = make(map[world.RoomID]bool)
	}
	t.gs.Dug[t.gs.Location] = true
	if site.Flag != "" {
		t.gs.SetFlag(site.Flag, true)
	}
	t.gs.Award("dig:"+string(t.gs.Location), site.Points)

	narration := site.Message
	var found []string
	for _, id := range site.Reveals {
		t.gs.Reveal(id)
		if t.gs.Items[id] != state.InRoom(t.gs.Location) || !t.canSee() {
			continue
		}
		if it, err := t.w.Item(id); err == nil {
			found = append(found, it.Name)
		}
	}
	if len(found) > 0 {
		narration += fmt.Sprintf(" You uncover: %s.", strings.Join(found, ", "))
	}
	return result{narration: narration, mutated: true}
}

func (t *turn) hasTool() bool {
	for _, it := range t.inventory() {
		if it.Tool {
			return true
		}
	}
	return false
}
