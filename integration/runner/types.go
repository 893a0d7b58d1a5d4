package runner

import (
	"time"

	"github.com/google/uuid"
)

// TestSuite defines a complete integration test scenario
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string     `yaml:"name"`
	World string     `yaml:"world,omitempty"` // Used for regular tests
	Steps []TestStep `yaml:"steps,omitempty"` // Used for regular tests
	Cases []string   `yaml:"cases,omitempty"` // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep is one command and what must hold after it runs.
type TestStep struct {
	Name         string       `yaml:"name,omitempty"`
	Command      string       `yaml:"command"`
	Expectations Expectations `yaml:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	// GameState properties
	Location  *string         `yaml:"location,omitempty"`
	Inventory []string        `yaml:"inventory,omitempty"` // Full inventory contents (order independent)
	Score     *int            `yaml:"score,omitempty"`
	Moves     *int            `yaml:"moves,omitempty"`
	GameOver  *bool           `yaml:"game_over,omitempty"`
	Won       *bool           `yaml:"won,omitempty"`
	Flags     map[string]bool `yaml:"flags,omitempty"`

	// Response Analysis
	ResponseContains    []string `yaml:"response_contains,omitempty"`
	ResponseNotContains []string `yaml:"response_not_contains,omitempty"`
	ResponseRegex       string   `yaml:"response_regex,omitempty"`
	ResponseEquals      *string  `yaml:"response_equals,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	StepName     string
	Success      bool
	Error        error
	Duration     time.Duration
	ResponseText string
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job       TestJob
	Results   []TestResult
	GameState uuid.UUID
	Error     error
	Duration  time.Duration
}
