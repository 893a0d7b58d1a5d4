package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameCommandsTotal       = "adventure_commands_total"
	MetricNameGamesStarted        = "adventure_games_started_total"
	MetricNameGamesFinished       = "adventure_games_finished_total"
	MetricNameInvariantViolations = "adventure_invariant_violations_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextCommandsTotal       = "Total number of player commands processed, by verb"
	HelpTextGamesStarted        = "Total number of games started, by world"
	HelpTextGamesFinished       = "Total number of games finished, by world and result"
	HelpTextInvariantViolations = "Total number of game state invariant violations"
)

// Labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelVerb   = "verb"
	LabelWorld  = "world"
	LabelResult = "result"
)

// Result label values
const (
	ResultWon  = "won"
	ResultQuit = "quit"
)

var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
