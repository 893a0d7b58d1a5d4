package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// copyToClipboard is swapped out in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

// saver persists a game for -resume.
type saver interface {
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
}

const consoleHelp = `Console commands:
  /help  Show this help
  /copy  Copy the last response to the clipboard
  /save  Save the game for later (-resume <id>)
  /quit  Leave without ending the game

Anything else is a game command. Type 'help' for those.`

// session runs one game for a console front end. It is shared by the TUI and plain modes.
type session struct {
	engine *engine.Engine
	saves  saver
	logger *slog.Logger

	last     string // last game narration, for /copy
	finished bool
}

func newSession(eng *engine.Engine, saves saver, logger *slog.Logger) *session {
	return &session{engine: eng, saves: saves, logger: logger}
}

// reply is what the front end shows after one line of input.
type reply struct {
	text  string
	art   string // Shown above text, never wrapped
	isErr bool
	quit  bool // leave the console now
}

// handle runs one line of input, either a console command or a game command.
func (s *session) handle(input string) reply {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "/") {
		return s.console(input)
	}

	out, err := s.engine.ProcessCommand(input)
	if err != nil {
		s.logger.Error("Command failed", "game_id", s.engine.State().ID.String(), "input", input, "error", err)
		return reply{text: "Internal game error: " + err.Error(), isErr: true}
	}
	s.last = out.Narration
	s.finished = out.GameOver
	return reply{text: out.Narration, art: out.Art}
}

func (s *session) console(input string) reply {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/help":
		return reply{text: consoleHelp}
	case "/quit", "/exit":
		return reply{text: "Goodbye.", quit: true}
	case "/copy":
		if s.last == "" {
			return reply{text: "Nothing to copy yet."}
		}
		if err := copyToClipboard(s.last); err != nil {
			s.logger.Warn("Clipboard copy failed", "error", err)
			return reply{text: "Could not copy to clipboard: " + err.Error(), isErr: true}
		}
		return reply{text: "Copied the last response to the clipboard."}
	case "/save":
		return s.save()
	default:
		return reply{text: fmt.Sprintf("Unknown console command %q. Type /help.", input), isErr: true}
	}
}

func (s *session) save() reply {
	if s.saves == nil {
		return reply{text: "Saving is not available.", isErr: true}
	}
	gs := s.engine.State()
	if err := s.saves.SaveGameState(context.Background(), gs.ID, gs); err != nil {
		s.logger.Error("Failed to save game", "game_id", gs.ID.String(), "error", err)
		return reply{text: "Could not save: " + err.Error(), isErr: true}
	}
	s.logger.Info("Game saved", "game_id", gs.ID.String())
	return reply{text: fmt.Sprintf("Game saved. Resume with: -resume %s", gs.ID)}
}
