package summarizer

import (
	"time"

	"github.com/evarisis/actaflow/internal/document"
	"github.com/evarisis/actaflow/internal/llm"
	"github.com/evarisis/actaflow/internal/logger"
)

type Options struct {
	Timeout     time.Duration
	Temperature *float32
	MaxTokens   int32
	Suffix      string
	Elaborator  string
	Reviewer    string
}

type implSummarizer struct {
	client    llm.Client
	converter document.Converter
	opts      Options
	logger    logger.Logger
}

// New creates a Summarizer that asks client for the minutes and renders them
// with converter.
func New(client llm.Client, converter document.Converter, opts Options, log logger.Logger) Summarizer {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}
	if opts.Temperature == nil {
		t := float32(0.3)
		opts.Temperature = &t
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 2048
	}
	if opts.Suffix == "" {
		opts.Suffix = "_official"
	}
	return &implSummarizer{
		client:    client,
		converter: converter,
		opts:      opts,
		logger:    log,
	}
}
