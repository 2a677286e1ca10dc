package transcription

import "context"

// Engine transcribes every pending dialogue of a persisted meeting and writes
// the literal minutes once all of them are terminal.
type Engine interface {
	Run(ctx context.Context, manifestPath string, progress ProgressFunc, cancel Canceller) Result
}

// ProgressFunc receives a completion fraction in [0,1] and a status line.
type ProgressFunc func(fraction float64, message string)

// Canceller is polled between dialogues.
type Canceller interface {
	IsSet() bool
}

// Result is the outcome of one run. Message is meant for the user; Err keeps
// the underlying cause for logs.
type Result struct {
	Success     bool
	Message     string
	LiteralPath string
	Reason      Reason
	Err         error
}
