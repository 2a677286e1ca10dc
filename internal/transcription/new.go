package transcription

import (
	"time"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/document"
	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/internal/transcriber"
)

type Options struct {
	Timeout  time.Duration
	Language string
}

type implEngine struct {
	transcriber  transcriber.Transcriber
	timeout      time.Duration
	language     string
	logger       logger.Logger
	readAudio    func(path string) ([]byte, int, error)
	writeLiteral func(path string, lit document.Literal) error
	now          func() time.Time
}

// New creates an Engine backed by tr.
func New(tr transcriber.Transcriber, opts Options, log logger.Logger) Engine {
	if opts.Timeout <= 0 {
		opts.Timeout = 180 * time.Second
	}
	if opts.Language == "" {
		opts.Language = "es-ES"
	}
	return &implEngine{
		transcriber:  tr,
		timeout:      opts.Timeout,
		language:     opts.Language,
		logger:       log,
		readAudio:    audio.ReadWAV,
		writeLiteral: document.WriteLiteral,
		now:          time.Now,
	}
}
