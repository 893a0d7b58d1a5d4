package runner

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"gopkg.in/yaml.v3"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes scripted games against a running adventure-engine API
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Logger            func(format string, args ...any)
	ErrorHandlingMode ErrorHandlingMode
	WorldOverride     string // If set, overrides the world for all test cases
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 30 * time.Second},
		Logger:            func(string, ...any) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a YAML (or JSON) file. Unknown keys are errors so
// a misspelled expectation cannot pass silently.
func LoadTestSuite(filename string) (TestSuite, error) {
	f, err := os.Open(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}
	defer f.Close()

	var suite TestSuite
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}
		jobs = append(jobs, subJobs...)
	}
	return jobs, nil
}

// DiscoverTestFiles lists the case files under dir.
func DiscoverTestFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml", ".json":
			if !d.IsDir() {
				files = append(files, path)
			}
		}
		return nil
	})
	return files, err
}

// RunSuite plays a fresh game through every step of the suite
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job:     TestJob{Name: suite.Name, Suite: suite},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	world := suite.World
	if r.WorldOverride != "" {
		world = r.WorldOverride
	}
	gs, err := CreateGame(ctx, r.Client, r.BaseURL, world)
	if err != nil {
		result.Error = fmt.Errorf("failed to create game: %w", err)
		result.Duration = time.Since(start)
		return result, result.Error
	}
	result.GameState = gs.ID

	for i, step := range suite.Steps {
		name := step.Name
		if name == "" {
			name = step.Command
		}
		stepResult := r.runStep(ctx, gs.ID, step)
		stepResult.StepName = name
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, name, stepResult.Error)
			}
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}
		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

func (r *Runner) runStep(ctx context.Context, gameStateID uuid.UUID, step TestStep) TestResult {
	start := time.Now()
	var result TestResult

	out, err := PostCommand(ctx, r.Client, r.BaseURL, gameStateID, step.Command)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}
	result.ResponseText = out.Narration

	gs, err := GetGameState(ctx, r.Client, r.BaseURL, gameStateID)
	if err != nil {
		result.Error = fmt.Errorf("failed to get gamestate after command: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := CheckExpectations(step.Expectations, out, gs); err != nil {
		result.Error = fmt.Errorf("expectation failed: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	result.Success = true
	result.Duration = time.Since(start)
	return result
}

// CheckExpectations validates the step expectations against the outcome and the saved state
func CheckExpectations(exp Expectations, out *engine.Outcome, gs *state.GameState) error {
	if exp.Location != nil && string(gs.Location) != *exp.Location {
		return fmt.Errorf("expected location %s, got %s", *exp.Location, gs.Location)
	}

	// Full inventory check (order independent)
	if len(exp.Inventory) > 0 {
		var actual []string
		for id, place := range gs.Items {
			if place == state.Carried {
				actual = append(actual, string(id))
			}
		}
		expected := slices.Clone(exp.Inventory)
		slices.Sort(expected)
		slices.Sort(actual)
		if !slices.Equal(expected, actual) {
			return fmt.Errorf("expected inventory %v, got %v", expected, actual)
		}
	}

	if exp.Score != nil && gs.Score != *exp.Score {
		return fmt.Errorf("expected score %d, got %d", *exp.Score, gs.Score)
	}
	if exp.Moves != nil && gs.Moves != *exp.Moves {
		return fmt.Errorf("expected moves %d, got %d", *exp.Moves, gs.Moves)
	}
	if exp.GameOver != nil && gs.GameOver != *exp.GameOver {
		return fmt.Errorf("expected game_over to be %t, got %t", *exp.GameOver, gs.GameOver)
	}
	if exp.Won != nil && gs.Won != *exp.Won {
		return fmt.Errorf("expected won to be %t, got %t", *exp.Won, gs.Won)
	}
	for flag, want := range exp.Flags {
		if gs.Flags[flag] != want {
			return fmt.Errorf("expected flag %s to be %t", flag, want)
		}
	}

	// Outcome and saved state must agree
	if out.Score != gs.Score || out.Moves != gs.Moves || out.Location != gs.Location {
		return fmt.Errorf("outcome (%s, %d points, %d moves) disagrees with saved state (%s, %d points, %d moves)",
			out.Location, out.Score, out.Moves, gs.Location, gs.Score, gs.Moves)
	}

	// Response content checks
	lowerResponse := strings.ToLower(out.Narration)
	for _, expectedText := range exp.ResponseContains {
		if !strings.Contains(lowerResponse, strings.ToLower(expectedText)) {
			return fmt.Errorf("expected response to contain '%s', got %q", expectedText, out.Narration)
		}
	}
	for _, unexpectedText := range exp.ResponseNotContains {
		if strings.Contains(lowerResponse, strings.ToLower(unexpectedText)) {
			return fmt.Errorf("expected response to NOT contain '%s', but it did", unexpectedText)
		}
	}
	if exp.ResponseEquals != nil && out.Narration != *exp.ResponseEquals {
		return fmt.Errorf("expected response %q, got %q", *exp.ResponseEquals, out.Narration)
	}

	if exp.ResponseRegex != "" {
		matched, err := regexp.MatchString(exp.ResponseRegex, out.Narration)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		if !matched {
			return fmt.Errorf("response didn't match regex pattern: %s", exp.ResponseRegex)
		}
	}

	return nil
}
