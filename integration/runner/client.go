package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// CreateGame starts a new game of world and returns its state.
func CreateGame(ctx context.Context, client *http.Client, baseURL, world string) (*state.GameState, error) {
	var created struct {
		GameState *state.GameState `json:"gamestate"`
	}
	body := map[string]string{"world": world}
	if err := doJSON(ctx, client, http.MethodPost, baseURL+"/v1/gamestate", body, http.StatusCreated, &created); err != nil {
		return nil, fmt.Errorf("create gamestate: %w", err)
	}
	if created.GameState == nil {
		return nil, fmt.Errorf("create gamestate: response has no gamestate")
	}
	return created.GameState, nil
}

// PostCommand sends one line of input and returns the outcome.
func PostCommand(ctx context.Context, client *http.Client, baseURL string, gameStateID uuid.UUID, command string) (*engine.Outcome, error) {
	body := map[string]string{
		"gamestate_id": gameStateID.String(),
		"command":      command,
	}
	var out engine.Outcome
	if err := doJSON(ctx, client, http.MethodPost, baseURL+"/v1/command", body, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("command %q: %w", command, err)
	}
	return &out, nil
}

// GetGameState retrieves the current gamestate
func GetGameState(ctx context.Context, client *http.Client, baseURL string, gameStateID uuid.UUID) (*state.GameState, error) {
	var gs state.GameState
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/v1/gamestate/"+gameStateID.String(), nil, http.StatusOK, &gs); err != nil {
		return nil, fmt.Errorf("get gamestate: %w", err)
	}
	return &gs, nil
}

func doJSON(ctx context.Context, client *http.Client, method, url string, in any, wantStatus int, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("returned %d (expected %d): %s", resp.StatusCode, wantStatus, string(data))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
