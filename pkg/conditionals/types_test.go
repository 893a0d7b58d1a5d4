package conditionals

import (
	"testing"
)

// mockGameStateView implements GameStateView for testing
type mockGameStateView struct {
	location  string
	inventory []string
	flags     map[string]bool
	score     int
	moves     int
	visited   []string
}

func (m *mockGameStateView) GetLocation() string       { return m.location }
func (m *mockGameStateView) GetFlags() map[string]bool { return m.flags }
func (m *mockGameStateView) GetScore() int             { return m.score }
func (m *mockGameStateView) GetMoves() int             { return m.moves }
func (m *mockGameStateView) CarriedCount() int         { return len(m.inventory) }
func (m *mockGameStateView) HasVisited(room string) bool {
	for _, r := range m.visited {
		if r == room {
			return true
		}
	}
	return false
}
func (m *mockGameStateView) HasItem(id string) bool {
	for _, it := range m.inventory {
		if it == id {
			return true
		}
	}
	return false
}

func TestEvaluateWhen(t *testing.T) {
	tests := []struct {
		name     string
		when     ConditionalWhen
		gsView   GameStateView
		expected bool
	}{
		{
			name:     "empty when never triggers",
			when:     ConditionalWhen{},
			gsView:   &mockGameStateView{location: "garden"},
			expected: false,
		},
		{
			name:     "location matches",
			when:     ConditionalWhen{Location: "secret"},
			gsView:   &mockGameStateView{location: "secret"},
			expected: true,
		},
		{
			name:     "location differs",
			when:     ConditionalWhen{Location: "secret"},
			gsView:   &mockGameStateView{location: "garden"},
			expected: false,
		},
		{
			name:     "all items carried",
			when:     ConditionalWhen{Items: []string{"key", "lamp"}},
			gsView:   &mockGameStateView{inventory: []string{"lamp", "key", "shovel"}},
			expected: true,
		},
		{
			name:     "one item missing",
			when:     ConditionalWhen{Items: []string{"key", "lamp"}},
			gsView:   &mockGameStateView{inventory: []string{"lamp"}},
			expected: false,
		},
		{
			name:     "flag set",
			when:     ConditionalWhen{Flags: map[string]bool{"hole_dug": true}},
			gsView:   &mockGameStateView{flags: map[string]bool{"hole_dug": true}},
			expected: true,
		},
		{
			name:     "missing flag reads as false",
			when:     ConditionalWhen{Flags: map[string]bool{"lamp_on": false}},
			gsView:   &mockGameStateView{},
			expected: true,
		},
		{
			name:     "required flag missing",
			when:     ConditionalWhen{Flags: map[string]bool{"lamp_on": true}},
			gsView:   &mockGameStateView{flags: map[string]bool{}},
			expected: false,
		},
		{
			name:     "min score reached",
			when:     ConditionalWhen{MinScore: intPtr(50)},
			gsView:   &mockGameStateView{score: 50},
			expected: true,
		},
		{
			name:     "min score not reached",
			when:     ConditionalWhen{MinScore: intPtr(50)},
			gsView:   &mockGameStateView{score: 45},
			expected: false,
		},
		{
			name:     "min moves not reached",
			when:     ConditionalWhen{MinMoves: intPtr(3)},
			gsView:   &mockGameStateView{moves: 2},
			expected: false,
		},
		{
			name:     "carrying enough items",
			when:     ConditionalWhen{MinItems: intPtr(3)},
			gsView:   &mockGameStateView{inventory: []string{"lamp", "key", "shovel"}},
			expected: true,
		},
		{
			name:     "carrying too few items",
			when:     ConditionalWhen{MinItems: intPtr(3)},
			gsView:   &mockGameStateView{inventory: []string{"lamp", "key"}},
			expected: false,
		},
		{
			name:     "room visited",
			when:     ConditionalWhen{Visited: []string{"secret"}},
			gsView:   &mockGameStateView{visited: []string{"driveway", "secret"}},
			expected: true,
		},
		{
			name:     "room not visited",
			when:     ConditionalWhen{Visited: []string{"secret"}},
			gsView:   &mockGameStateView{visited: []string{"driveway"}},
			expected: false,
		},
		{
			name: "combined conditions all satisfied",
			when: ConditionalWhen{
				Location: "secret",
				Items:    []string{"key"},
				MinScore: intPtr(50),
			},
			gsView: &mockGameStateView{
				location:  "secret",
				inventory: []string{"key"},
				score:     55,
			},
			expected: true,
		},
		{
			name: "combined conditions one failing",
			when: ConditionalWhen{
				Location: "secret",
				Items:    []string{"key"},
				MinScore: intPtr(50),
			},
			gsView: &mockGameStateView{
				location:  "secret",
				inventory: []string{"key"},
				score:     30,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateWhen(tt.when, tt.gsView); got != tt.expected {
				t.Errorf("EvaluateWhen() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

// Helper function to create int pointers
func intPtr(i int) *int {
	return &i
}
