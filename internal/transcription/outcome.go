package transcription

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evarisis/actaflow/internal/project"
	"github.com/evarisis/actaflow/internal/transcriber"
)

// Reason classifies how a single transcription attempt ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmptyAudio
	ReasonUnrecognized
	ReasonUnexpected
	ReasonTimeout
	ReasonConnection
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonEmptyAudio:
		return "empty audio"
	case ReasonUnrecognized:
		return "unrecognized"
	case ReasonUnexpected:
		return "unexpected"
	case ReasonTimeout:
		return "timeout"
	case ReasonConnection:
		return "connection"
	case ReasonCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Outcome of one dialogue. Text is set only for ReasonNone; Detail carries
// the error text for the error reasons.
type Outcome struct {
	Text   string
	Reason Reason
	Detail string
}

// Fatal outcomes stop the run and leave the dialogue pending.
func (o Outcome) Fatal() bool {
	switch o.Reason {
	case ReasonTimeout, ReasonConnection, ReasonCancelled:
		return true
	}
	return false
}

// Render produces the text stored for the dialogue.
func (o Outcome) Render() string {
	switch o.Reason {
	case ReasonNone:
		return o.Text
	case ReasonEmptyAudio:
		return "[Grabación vacía]"
	case ReasonUnrecognized:
		return "[Audio no reconocido o silencio]"
	case ReasonTimeout:
		return "[Error de Transcripción: La operación tardó demasiado (Timeout)]"
	case ReasonConnection:
		return fmt.Sprintf("[Error de Conexión en Transcripción: %s]", o.Detail)
	default:
		return fmt.Sprintf("[Error inesperado durante transcripción: %s]", o.Detail)
	}
}

// Status is the manifest tag for a terminal outcome.
func (o Outcome) Status() string {
	switch o.Reason {
	case ReasonNone:
		return project.StatusTranscribed
	case ReasonEmptyAudio:
		return project.StatusEmpty
	case ReasonUnrecognized:
		return project.StatusUnrecognized
	default:
		return project.StatusUnexpected
	}
}

func classify(text string, err error) Outcome {
	var reqErr *transcriber.RequestError
	switch {
	case err == nil:
		if text = strings.TrimSpace(text); text == "" {
			return Outcome{Reason: ReasonUnrecognized}
		}
		return Outcome{Text: text, Reason: ReasonNone}
	case errors.Is(err, transcriber.ErrNoSpeech):
		return Outcome{Reason: ReasonUnrecognized}
	case errors.As(err, &reqErr):
		return Outcome{Reason: ReasonConnection, Detail: reqErr.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return Outcome{Reason: ReasonTimeout}
	case errors.Is(err, context.Canceled):
		return Outcome{Reason: ReasonCancelled}
	default:
		return Outcome{Reason: ReasonUnexpected, Detail: err.Error()}
	}
}
