package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/conditionals"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

var ErrCorruptState = errors.New("corrupt game state")

// Outcome is what the front end gets back for each command.
type Outcome struct {
	Verb      command.Verb `json:"verb,omitempty"` // Empty when the input did not parse
	Narration string       `json:"narration"`
	GameOver  bool         `json:"game_over"`
	Won       bool         `json:"won"`
	Score     int          `json:"score"`
	Moves     int          `json:"moves"`
	Location  world.RoomID `json:"location"`
	Art       string       `json:"art,omitempty"` // Picture of the room or item described in full
}

// Engine runs one play session over a world. It is not safe for concurrent use; commands
// are processed one at a time, to completion.
type Engine struct {
	world  *world.World
	state  *state.GameState
	logger *slog.Logger
}

// New creates an engine for gs, or for a fresh game when gs is nil. The state must be
// consistent with the world.
func New(w *world.World, gs *state.GameState, logger *slog.Logger) (*Engine, error) {
	if w == nil {
		return nil, errors.New("world is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if gs == nil {
		gs = state.NewGameState(w)
	}
	if err := gs.Validate(w); err != nil {
		return nil, err
	}
	return &Engine{world: w, state: gs, logger: logger}, nil
}

// Restore rebuilds an engine from a Snapshot.
func Restore(w *world.World, blob []byte, logger *slog.Logger) (*Engine, error) {
	var gs state.GameState
	if err := json.Unmarshal(blob, &gs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	e, err := New(w, &gs, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	return e, nil
}

// Snapshot serializes the game state.
func (e *Engine) Snapshot() ([]byte, error) {
	data, err := json.Marshal(e.state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}
	return data, nil
}

func (e *Engine) World() *world.World { return e.world }

func (e *Engine) State() *state.GameState { return e.state }

// Opening is the text shown when a session starts: the world's intro and the starting room.
func (e *Engine) Opening() string {
	t := e.newTurn(command.Command{Verb: command.VerbLook})
	room := t.enterRoom()
	if e.world.Intro == "" {
		return room
	}
	return e.world.Intro + "\n\n" + room
}

// ProcessCommand parses and handles one line of player input. Anything the player types
// yields narration; the error is reserved for broken game state invariants.
func (e *Engine) ProcessCommand(raw string) (Outcome, error) {
	if e.state.GameOver {
		return e.outcome(msgGameOver), nil
	}

	cmd, err := command.Parse(raw)
	if err != nil {
		var perr *command.ParseError
		if errors.As(err, &perr) {
			e.logger.Debug("Unparsed command", "game_id", e.state.ID.String(), "input", raw, "reason", perr.Error())
			return e.outcome(parseFailure(perr)), nil
		}
		return Outcome{}, err
	}

	handle, ok := handlers[cmd.Verb]
	if !ok {
		return e.outcome(msgUnknown), nil
	}

	t := e.newTurn(cmd)
	res := handle(t)
	narration := res.narration
	if res.mutated {
		if msg := e.checkWin(); msg != "" {
			narration += "\n\n" + msg
		}
		e.state.UpdatedAt = time.Now()
	}

	e.logger.Debug("Processed command",
		"game_id", e.state.ID.String(),
		"command", cmd.String(),
		"location", e.state.Location,
		"score", e.state.Score,
		"game_over", e.state.GameOver)

	out := e.outcome(narration)
	out.Verb = cmd.Verb
	out.Art = t.art
	if err := e.state.Validate(e.world); err != nil {
		e.logger.Error("Game state invariant violated", "game_id", e.state.ID.String(), "command", cmd.String(), "error", err)
		return out, fmt.Errorf("after %q: %w", cmd.String(), err)
	}
	return out, nil
}

func (e *Engine) newTurn(cmd command.Command) *turn {
	here, _ := e.world.Room(e.state.Location)
	return &turn{w: e.world, gs: e.state, cmd: cmd, here: here}
}

// checkWin evaluates the world's win conditions in order. The first that holds ends the
// game and its message is returned.
func (e *Engine) checkWin() string {
	if e.state.GameOver {
		return ""
	}
	for _, wc := range e.world.WinConditions {
		if !conditionals.EvaluateWhen(wc.When, e.state) {
			continue
		}
		e.state.Won = true
		e.state.GameOver = true
		if wc.SetFlag != "" {
			e.state.SetFlag(wc.SetFlag, true)
		}
		e.logger.Info("Game won", "game_id", e.state.ID.String(), "condition", wc.ID, "score", e.state.Score, "moves", e.state.Moves)
		return wc.Message + "\n" + fmt.Sprintf(msgFinalScore, e.state.Score, e.state.Moves)
	}
	return ""
}

func (e *Engine) outcome(narration string) Outcome {
	return Outcome{
		Narration: narration,
		GameOver:  e.state.GameOver,
		Won:       e.state.Won,
		Score:     e.state.Score,
		Moves:     e.state.Moves,
		Location:  e.state.Location,
	}
}
