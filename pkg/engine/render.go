package engine

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/conditionals"
	"github.com/jwebster45206/adventure-engine/pkg/world"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	msgDark          = "It is too dark to see anything."
	msgCantGo        = "You can't go that way."
	msgGameOver      = "The game is over."
	msgEmpty         = "Type 'help' for available commands."
	msgUnknown       = "I don't understand that command. Try 'help' to see available commands."
	msgNoTool        = "You need something to dig with."
	msgNothingToDig  = "You dig around but find nothing interesting."
	msgAlreadyDug    = "There's nothing more to dig here."
	msgTurnWhat      = "Turn what on or off?"
	msgNowDark       = "It is now pitch dark."
	msgCarryNothing  = "You are carrying nothing."
	msgNotHere       = "You don't see any '%s' here."
	msgNotCarried    = "You don't have any '%s'."
	msgFinalScore    = "Final score: %d points in %d moves."
	msgThanksForPlay = "Thanks for playing! " + msgFinalScore
)

var titleCaser = cases.Title(language.English)

// renderRoom describes the current room. long picks the full description over the short one.
func (t *turn) renderRoom(long bool) string {
	r := t.room()
	if !t.canSee() {
		return msgDark
	}

	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString("\n\n")
	if long || r.ShortDescription == "" {
		b.WriteString(r.Description)
		t.art = r.Art
	} else {
		b.WriteString(r.ShortDescription)
	}

	if items := t.roomItems(); len(items) > 0 {
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.Name
		}
		fmt.Fprintf(&b, "\n\nYou can see: %s.", strings.Join(names, ", "))
	}

	if exits := t.openExits(r); len(exits) > 0 {
		dirs := make([]string, len(exits))
		for i, d := range exits {
			dirs[i] = string(d)
		}
		fmt.Fprintf(&b, "\nExits: %s", strings.Join(dirs, ", "))
	}
	return b.String()
}

// enterRoom renders the room the player just arrived in: long on the first lit visit,
// short afterwards. Dark rooms are not counted as visited.
func (t *turn) enterRoom() string {
	if !t.canSee() {
		return msgDark
	}
	first := t.gs.MarkVisited(t.gs.Location)
	return t.renderRoom(first)
}

func (t *turn) renderItem(it *world.Item) string {
	t.art = it.Art
	var b strings.Builder
	b.WriteString(titleCaser.String(it.Name))
	b.WriteString("\n")
	b.WriteString(it.Description)

	props := []string{"Fixed in place"}
	if it.Takeable {
		props[0] = "Portable"
	}
	if it.Usable() {
		props = append(props, "Usable")
	}
	if it.LightSource {
		if t.gs.HasFlag(it.LitFlag()) {
			props = append(props, "Lit")
		} else {
			props = append(props, "Unlit")
		}
	}
	fmt.Fprintf(&b, "\n\nProperties: %s", strings.Join(props, ", "))
	return b.String()
}

func (t *turn) renderInventory() string {
	items := t.inventory()
	if len(items) == 0 {
		return msgCarryNothing
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, it := range items {
		b.WriteString("\n  - ")
		b.WriteString(it.Name)
		if it.LightSource && t.gs.HasFlag(it.LitFlag()) {
			b.WriteString(" (lit)")
		}
	}
	fmt.Fprintf(&b, "\n\nCarrying %d item(s).", len(items))
	return b.String()
}

func (t *turn) renderScore() string {
	var b strings.Builder
	if t.w.MaxScore > 0 {
		fmt.Fprintf(&b, "Score: %d of %d points in %d moves.", t.gs.Score, t.w.MaxScore, t.gs.Moves)
		percent := min(100, t.gs.Score*100/t.w.MaxScore)
		bars := percent / 10
		fmt.Fprintf(&b, "\nProgress: [%s%s] %d%%", strings.Repeat("▓", bars), strings.Repeat("░", 10-bars), percent)
	} else {
		fmt.Fprintf(&b, "Score: %d points in %d moves.", t.gs.Score, t.gs.Moves)
	}

	if earned := t.achievements(); len(earned) > 0 {
		b.WriteString("\n\nAchievements:")
		for _, name := range earned {
			b.WriteString("\n  - ")
			b.WriteString(name)
		}
	}
	return b.String()
}

// achievements returns the names of the world's achievements that currently hold.
func (t *turn) achievements() []string {
	var earned []string
	for _, a := range t.w.Achievements {
		if conditionals.EvaluateWhen(a.When, t.gs) {
			earned = append(earned, a.Name)
		}
	}
	return earned
}

var helpText = strings.Join([]string{
	"Movement:",
	"  north (n), south (s), east (e), west (w), up (u), down (d)",
	"  northeast (ne), northwest (nw), southeast (se), southwest (sw), go <direction>",
	"",
	"Items:",
	"  take <item>     pick up an item (also: get, pick up)",
	"  drop <item>     drop an item you carry (also: put down)",
	"  examine <item>  look closely at something (also: x, look at)",
	"  inventory (i)   check what you're carrying",
	"",
	"Actions:",
	"  use <item>          use an item you carry",
	"  turn on/off <item>  control a light",
	"  dig                 dig, if you have something to dig with",
	"",
	"Game:",
	"  look (l)  look around",
	"  help      show this message",
	"  score     check your progress",
	"  quit (q)  end the game",
}, "\n")

func (t *turn) renderHelp() string {
	if t.w.Mission == "" {
		return helpText
	}
	return helpText + "\n\nCurrent mission: " + t.w.Mission
}

func parseFailure(err *command.ParseError) string {
	switch err.Kind {
	case command.Empty:
		return msgEmpty
	case command.Incomplete:
		return msgTurnWhat
	default:
		return msgUnknown
	}
}
