package command

import (
	"errors"
	"testing"

	"github.com/jwebster45206/adventure-engine/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Command
	}{
		{name: "direction word", input: "north", expected: Command{Verb: VerbGo, Direction: world.North}},
		{name: "direction abbreviation", input: "n", expected: Command{Verb: VerbGo, Direction: world.North}},
		{name: "diagonal abbreviation", input: "SW", expected: Command{Verb: VerbGo, Direction: world.Southwest}},
		{name: "up", input: "u", expected: Command{Verb: VerbGo, Direction: world.Up}},
		{name: "go with direction", input: "go down", expected: Command{Verb: VerbGo, Direction: world.Down}},
		{name: "go with abbreviation", input: "walk e", expected: Command{Verb: VerbGo, Direction: world.East}},
		{name: "go with unknown direction", input: "go sideways", expected: Command{Verb: VerbGo, Object: "sideways"}},
		{name: "go alone", input: "go", expected: Command{Verb: VerbGo}},
		{name: "take", input: "take shovel", expected: Command{Verb: VerbTake, Object: "shovel"}},
		{name: "mixed case and spacing", input: "  TAKE   Shovel ", expected: Command{Verb: VerbTake, Object: "shovel"}},
		{name: "articles dropped", input: "take the brass key", expected: Command{Verb: VerbTake, Object: "brass key"}},
		{name: "punctuation stripped", input: "take lamp!", expected: Command{Verb: VerbTake, Object: "lamp"}},
		{name: "get alias", input: "get lamp", expected: Command{Verb: VerbTake, Object: "lamp"}},
		{name: "pick up", input: "pick up the lamp", expected: Command{Verb: VerbTake, Object: "lamp"}},
		{name: "put down", input: "put down lamp", expected: Command{Verb: VerbDrop, Object: "lamp"}},
		{name: "drop", input: "drop key", expected: Command{Verb: VerbDrop, Object: "key"}},
		{name: "turn on", input: "turn on lamp", expected: Command{Verb: VerbTurnOn, Object: "lamp"}},
		{name: "turn off", input: "turn off the lamp", expected: Command{Verb: VerbTurnOff, Object: "lamp"}},
		{name: "turn object on", input: "turn lamp on", expected: Command{Verb: VerbTurnOn, Object: "lamp"}},
		{name: "switch object off", input: "switch the lamp off", expected: Command{Verb: VerbTurnOff, Object: "lamp"}},
		{name: "light", input: "light lantern", expected: Command{Verb: VerbTurnOn, Object: "lantern"}},
		{name: "look", input: "look", expected: Command{Verb: VerbLook}},
		{name: "look abbreviation", input: "l", expected: Command{Verb: VerbLook}},
		{name: "look at", input: "look at lamp", expected: Command{Verb: VerbExamine, Object: "lamp"}},
		{name: "look around", input: "look around", expected: Command{Verb: VerbLook}},
		{name: "look with object", input: "look lamp", expected: Command{Verb: VerbExamine, Object: "lamp"}},
		{name: "examine abbreviation", input: "x lamp", expected: Command{Verb: VerbExamine, Object: "lamp"}},
		{name: "ex", input: "ex key", expected: Command{Verb: VerbExamine, Object: "key"}},
		{name: "inventory abbreviation", input: "i", expected: Command{Verb: VerbInventory}},
		{name: "inv", input: "inv", expected: Command{Verb: VerbInventory}},
		{name: "eat", input: "eat trail mix", expected: Command{Verb: VerbUse, Object: "trail mix"}},
		{name: "dig", input: "dig", expected: Command{Verb: VerbDig}},
		{name: "help", input: "help", expected: Command{Verb: VerbHelp}},
		{name: "question mark", input: "?", expected: Command{Verb: VerbHelp}},
		{name: "score", input: "score", expected: Command{Verb: VerbScore}},
		{name: "quit abbreviation", input: "q", expected: Command{Verb: VerbQuit}},
		{name: "unicode case folding", input: "TAKE ŞHOVEL", expected: Command{Verb: VerbTake, Object: "şhovel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ErrorKind
		word     string
		sentinel error
	}{
		{name: "empty", input: "", kind: Empty, sentinel: ErrEmpty},
		{name: "whitespace", input: "   \t ", kind: Empty, sentinel: ErrEmpty},
		{name: "only articles", input: "the a an", kind: Empty, sentinel: ErrEmpty},
		{name: "only punctuation", input: "!!!", kind: Empty, sentinel: ErrEmpty},
		{name: "unknown verb", input: "dance wildly", kind: UnknownVerb, word: "dance", sentinel: ErrUnknownVerb},
		{name: "direction with trailing words", input: "north now", kind: UnknownVerb, word: "north", sentinel: ErrUnknownVerb},
		{name: "turn without on or off", input: "turn lamp", kind: Incomplete, word: "turn", sentinel: ErrIncomplete},
		{name: "bare switch", input: "switch", kind: Incomplete, word: "switch", sentinel: ErrIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.word, perr.Word)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "go north", Command{Verb: VerbGo, Direction: world.North}.String())
	assert.Equal(t, "take lamp", Command{Verb: VerbTake, Object: "lamp"}.String())
	assert.Equal(t, "inventory", Command{Verb: VerbInventory}.String())
}
