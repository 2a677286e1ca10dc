package pipeline

import (
	"context"

	"github.com/evarisis/actaflow/internal/session"
)

// Pipeline runs persist, transcription and summarization for one meeting folder.
type Pipeline interface {
	// Process resumes the folder if it already holds a manifest, otherwise it
	// persists sess there first. sink may be nil.
	Process(ctx context.Context, meetingDir string, sess *session.Session, sink Sink) Report
	// Pending reports whether the folder still has work left.
	Pending(meetingDir string) bool
}

// Report is the final outcome shown to the user.
type Report struct {
	RunID        string
	Success      bool
	Partial      bool
	LiteralPath  string
	OfficialPath string
	Message      string
	Err          error
}
