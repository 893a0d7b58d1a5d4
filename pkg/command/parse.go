package command

import (
	"strings"
	"unicode"

	"github.com/jwebster45206/adventure-engine/pkg/world"
	"golang.org/x/text/cases"
)

var directionWords = map[string]world.Direction{
	"north": world.North, "n": world.North,
	"south": world.South, "s": world.South,
	"east": world.East, "e": world.East,
	"west": world.West, "w": world.West,
	"northeast": world.Northeast, "ne": world.Northeast,
	"northwest": world.Northwest, "nw": world.Northwest,
	"southeast": world.Southeast, "se": world.Southeast,
	"southwest": world.Southwest, "sw": world.Southwest,
	"up": world.Up, "u": world.Up,
	"down": world.Down, "d": world.Down,
}

var verbWords = map[string]Verb{
	"go": VerbGo, "walk": VerbGo, "move": VerbGo,
	"look": VerbLook, "l": VerbLook,
	"examine": VerbExamine, "x": VerbExamine, "ex": VerbExamine, "inspect": VerbExamine, "read": VerbExamine,
	"take": VerbTake, "get": VerbTake, "grab": VerbTake,
	"drop": VerbDrop, "discard": VerbDrop,
	"use": VerbUse, "eat": VerbUse, "drink": VerbUse,
	"dig":       VerbDig,
	"inventory": VerbInventory, "inv": VerbInventory, "i": VerbInventory,
	"light": VerbTurnOn, "extinguish": VerbTurnOff,
	"help": VerbHelp, "h": VerbHelp,
	"score": VerbScore,
	"quit":  VerbQuit, "q": VerbQuit, "exit": VerbQuit,
}

// Two-word verbs, matched before single words.
var phraseVerbs = []struct {
	words [2]string
	verb  Verb
}{
	{[2]string{"turn", "on"}, VerbTurnOn},
	{[2]string{"turn", "off"}, VerbTurnOff},
	{[2]string{"switch", "on"}, VerbTurnOn},
	{[2]string{"switch", "off"}, VerbTurnOff},
	{[2]string{"pick", "up"}, VerbTake},
	{[2]string{"put", "down"}, VerbDrop},
	{[2]string{"look", "at"}, VerbExamine},
}

var articles = map[string]bool{"the": true, "a": true, "an": true}

var folder = cases.Fold()

// Parse turns a raw input line into a Command. Input is case folded, punctuation is
// stripped and articles are dropped before matching.
func Parse(raw string) (Command, error) {
	if strings.TrimSpace(raw) == "?" {
		return Command{Verb: VerbHelp}, nil
	}
	words := Normalize(raw)
	if len(words) == 0 {
		return Command{}, &ParseError{Kind: Empty}
	}

	if d, ok := directionWords[words[0]]; ok && len(words) == 1 {
		return Command{Verb: VerbGo, Direction: d}, nil
	}

	if len(words) >= 2 {
		for _, p := range phraseVerbs {
			if words[0] == p.words[0] && words[1] == p.words[1] {
				return Command{Verb: p.verb, Object: strings.Join(words[2:], " ")}, nil
			}
		}
	}

	// "turn lamp on", "switch the lamp off"
	if words[0] == "turn" || words[0] == "switch" {
		if len(words) >= 3 {
			object := strings.Join(words[1:len(words)-1], " ")
			switch words[len(words)-1] {
			case "on":
				return Command{Verb: VerbTurnOn, Object: object}, nil
			case "off":
				return Command{Verb: VerbTurnOff, Object: object}, nil
			}
		}
		return Command{}, &ParseError{Kind: Incomplete, Word: words[0]}
	}

	verb, ok := verbWords[words[0]]
	if !ok {
		return Command{}, &ParseError{Kind: UnknownVerb, Word: words[0]}
	}
	object := strings.Join(words[1:], " ")

	switch verb {
	case VerbGo:
		cmd := Command{Verb: VerbGo, Object: object}
		if d, ok := directionWords[object]; ok {
			cmd.Direction = d
			cmd.Object = ""
		}
		return cmd, nil
	case VerbLook:
		if object == "around" {
			return Command{Verb: VerbLook}, nil
		}
		if object != "" {
			return Command{Verb: VerbExamine, Object: object}, nil
		}
	}
	return Command{Verb: verb, Object: object}, nil
}

// Normalize folds case, strips punctuation and drops articles, returning the words left.
func Normalize(raw string) []string {
	folded := folder.String(raw)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, folded)

	fields := strings.Fields(cleaned)
	words := fields[:0]
	for _, f := range fields {
		if !articles[f] {
			words = append(words, f)
		}
	}
	return words
}
