package command

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Verb is the closed set of actions the engine understands.
type Verb string

const (
	VerbGo        Verb = "go"
	VerbLook      Verb = "look"
	VerbExamine   Verb = "examine"
	VerbTake      Verb = "take"
	VerbDrop      Verb = "drop"
	VerbUse       Verb = "use"
	VerbDig       Verb = "dig"
	VerbInventory Verb = "inventory"
	VerbTurnOn    Verb = "turn_on"
	VerbTurnOff   Verb = "turn_off"
	VerbHelp      Verb = "help"
	VerbScore     Verb = "score"
	VerbQuit      Verb = "quit"
)

// Verbs lists every verb, in help order.
var Verbs = []Verb{
	VerbGo, VerbLook, VerbExamine, VerbTake, VerbDrop, VerbUse, VerbDig,
	VerbInventory, VerbTurnOn, VerbTurnOff, VerbHelp, VerbScore, VerbQuit,
}

// Command is one parsed input line.
type Command struct {
	Verb      Verb            `json:"verb"`
	Object    string          `json:"object,omitempty"`    // Remaining words, normalized
	Direction world.Direction `json:"direction,omitempty"` // Set for VerbGo when the direction is known
}

func (c Command) String() string {
	switch {
	case c.Direction != "":
		return fmt.Sprintf("%s %s", c.Verb, c.Direction)
	case c.Object != "":
		return fmt.Sprintf("%s %s", c.Verb, c.Object)
	default:
		return string(c.Verb)
	}
}

var (
	ErrEmpty       = errors.New("empty command")
	ErrUnknownVerb = errors.New("unknown verb")
	ErrIncomplete  = errors.New("incomplete command")
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	Empty ErrorKind = iota
	UnknownVerb
	Incomplete // A known verb missing a required word, e.g. "turn lamp"
)

// ParseError reports input the parser could not turn into a Command. It is an expected
// outcome of player typing, never a fault.
type ParseError struct {
	Kind ErrorKind
	Word string // The offending verb word, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case Empty:
		return "empty command"
	case Incomplete:
		return fmt.Sprintf("incomplete command %q", e.Word)
	default:
		return fmt.Sprintf("unknown verb %q", e.Word)
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case Empty:
		return ErrEmpty
	case Incomplete:
		return ErrIncomplete
	default:
		return ErrUnknownVerb
	}
}
