package engine

import (
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/command"
)

// handlerFunc handles one verb. It reads and mutates the turn's game state and returns
// the narration; it never returns an error for anything the player did.
type handlerFunc func(t *turn) result

var handlers = map[command.Verb]handlerFunc{
	command.VerbGo:        handleGo,
	command.VerbLook:      handleLook,
	command.VerbExamine:   handleExamine,
	command.VerbTake:      handleTake,
	command.VerbDrop:      handleDrop,
	command.VerbUse:       handleUse,
	command.VerbDig:       handleDig,
	command.VerbInventory: handleInventory,
	command.VerbTurnOn:    handleTurnOn,
	command.VerbTurnOff:   handleTurnOff,
	command.VerbHelp:      handleHelp,
	command.VerbScore:     handleScore,
	command.VerbQuit:      handleQuit,
}

func handleInventory(t *turn) result {
	return result{narration: t.renderInventory()}
}

func handleScore(t *turn) result {
	return result{narration: t.renderScore()}
}

func handleHelp(t *turn) result {
	return result{narration: t.renderHelp()}
}

func handleQuit(t *turn) result {
	t.gs.GameOver = true
	return result{narration: fmt.Sprintf(msgThanksForPlay, t.gs.Score, t.gs.Moves), mutated: true}
}
