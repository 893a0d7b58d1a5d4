package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// CreateGameStateRequest defines the request body for creating a new game state
type CreateGameStateRequest struct {
	World string `json:"world" validate:"required"` // World id, e.g. "dunnet"
}

// CreateGameStateResponse is the new game plus the text to show the player first.
type CreateGameStateResponse struct {
	GameState *state.GameState `json:"gamestate"`
	Narration string           `json:"narration"`
}

type GameStateHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewGameStateHandler(storage storage.Storage, logger *slog.Logger) *GameStateHandler {
	return &GameStateHandler{
		storage: storage,
		logger:  logger,
	}
}

// Create handles POST /v1/gamestate
func (h *GameStateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGameStateRequest
	if err := decodeRequest(r, &req); err != nil {
		h.logger.Warn("Invalid create game state request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body: world is required")
		return
	}

	ctx := r.Context()
	wld, err := h.storage.GetWorld(ctx, req.World)
	if err != nil {
		if errors.Is(err, storage.ErrWorldNotFound) {
			writeError(w, h.logger, http.StatusBadRequest, "Unknown world: "+req.World)
			return
		}
		h.logger.Error("Failed to load world", "world", req.World, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load world")
		return
	}

	eng, err := engine.New(wld, nil, h.logger)
	if err != nil {
		h.logger.Error("Failed to start game", "world", req.World, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to start game")
		return
	}
	narration := eng.Opening()
	gs := eng.State()

	if err := h.storage.SaveGameState(ctx, gs.ID, gs); err != nil {
		logger.WithGameID(h.logger, gs.ID.String()).Error("Failed to save new game state", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save game state")
		return
	}

	metrics.GamesStarted.WithLabelValues(wld.ID).Inc()
	logger.WithGameID(h.logger, gs.ID.String()).Info("Game state created", "world", wld.ID)
	writeJSON(w, h.logger, http.StatusCreated, CreateGameStateResponse{GameState: gs, Narration: narration})
}

// Get handles GET /v1/gamestate/{id}
func (h *GameStateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameStateID(w, r)
	if !ok {
		return
	}
	gs, err := h.storage.LoadGameState(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load game state", "game_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load game state")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Game state not found")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, gs)
}

// Delete handles DELETE /v1/gamestate/{id}
func (h *GameStateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameStateID(w, r)
	if !ok {
		return
	}
	if err := h.storage.DeleteGameState(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete game state", "game_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete game state")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameStateHandler) gameStateID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("Invalid game state ID", "id", idStr, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game state ID format")
		return uuid.Nil, false
	}
	return id, true
}
