package summarizer

import (
	"context"
	"time"
)

// Summarizer turns a literal transcript document into the official minutes.
type Summarizer interface {
	Run(ctx context.Context, literalPath string, meeting Meeting, progress ProgressFunc) Result
}

// ProgressFunc receives a completion fraction in [0,1] and a status line.
type ProgressFunc func(fraction float64, message string)

// Meeting is the metadata injected into the minutes template.
type Meeting struct {
	Title        string
	Participants []string
	Date         time.Time
}

type Result struct {
	Success      bool
	Message      string
	OfficialPath string
	Err          error
}
