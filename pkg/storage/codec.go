package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jwebster45206/adventure-engine/pkg/state"
)

func marshalGameState(gs *state.GameState) ([]byte, error) {
	data, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gamestate: %w", err)
	}
	return data, nil
}

func unmarshalGameState(data []byte) (*state.GameState, error) {
	var gs state.GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gamestate: %w", err)
	}
	return &gs, nil
}
