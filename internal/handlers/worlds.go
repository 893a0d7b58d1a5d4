package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// WorldSummary describes a world without giving away its map.
type WorldSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Intro    string `json:"intro,omitempty"`
	Mission  string `json:"mission,omitempty"`
	MaxScore int    `json:"max_score,omitempty"`
	Rooms    int    `json:"rooms"`
	Items    int    `json:"items"`
}

type WorldHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewWorldHandler(storage storage.Storage, logger *slog.Logger) *WorldHandler {
	return &WorldHandler{storage: storage, logger: logger}
}

// List handles GET /v1/worlds
func (h *WorldHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.storage.ListWorlds(r.Context())
	if err != nil {
		h.logger.Error("Failed to list worlds", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list worlds")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, infos)
}

// Get handles GET /v1/worlds/{id}
func (h *WorldHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	wld, err := h.storage.GetWorld(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrWorldNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "World not found")
			return
		}
		h.logger.Error("Failed to load world", "world", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load world")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, WorldSummary{
		ID:       wld.ID,
		Name:     wld.Name,
		Intro:    wld.Intro,
		Mission:  wld.Mission,
		MaxScore: wld.MaxScore,
		Rooms:    len(wld.Rooms),
		Items:    len(wld.Items),
	})
}
