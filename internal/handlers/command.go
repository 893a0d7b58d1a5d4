package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// CommandRequest is one line of player input for a stored game.
type CommandRequest struct {
	GameStateID string `json:"gamestate_id" validate:"required,uuid"`
	Command     string `json:"command" validate:"max=256"`
}

type CommandHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewCommandHandler(storage storage.Storage, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{storage: storage, logger: logger}
}

// ServeHTTP handles POST /v1/command. The game is loaded, one command is run, and the
// state is saved again before the outcome is returned.
func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := decodeRequest(r, &req); err != nil {
		h.logger.Warn("Invalid command request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body: gamestate_id must be a UUID and command at most 256 characters")
		return
	}
	id := uuid.MustParse(req.GameStateID)
	log := logger.WithGameID(h.logger, id.String())
	ctx := r.Context()

	gs, err := h.storage.LoadGameState(ctx, id)
	if err != nil {
		log.Error("Failed to load game state", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Game state not found")
		return
	}

	wld, err := h.storage.GetWorld(ctx, gs.World)
	if err != nil {
		log.Error("Failed to load world for game state", "world", gs.World, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load world")
		return
	}

	eng, err := engine.New(wld, gs, log)
	if err != nil {
		logger.WithError(log, err).Error("Stored game state does not match its world")
		writeError(w, h.logger, http.StatusConflict, "Game state is corrupt")
		return
	}

	wasOver := gs.GameOver
	out, err := eng.ProcessCommand(req.Command)
	if err != nil {
		metrics.InvariantViolations.Inc()
		logger.WithError(log, err).Error("Command broke game state")
		writeError(w, h.logger, http.StatusInternalServerError, "Internal game error")
		return
	}

	verb := string(out.Verb)
	if verb == "" {
		verb = "unparsed"
	}
	metrics.CommandsTotal.WithLabelValues(verb).Inc()

	if !wasOver {
		if err := h.storage.SaveGameState(ctx, id, eng.State()); err != nil {
			log.Error("Failed to save game state", "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to save game state")
			return
		}
		if out.GameOver {
			result := metrics.ResultQuit
			if out.Won {
				result = metrics.ResultWon
			}
			metrics.GamesFinished.WithLabelValues(wld.ID, result).Inc()
			log.Info("Game finished", "result", result, "score", out.Score, "moves", out.Moves)
		}
	}

	writeJSON(w, h.logger, http.StatusOK, out)
}
