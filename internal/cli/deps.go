package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/config"
	"github.com/evarisis/actaflow/internal/connectivity"
	"github.com/evarisis/actaflow/internal/document"
	"github.com/evarisis/actaflow/internal/llm"
	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/internal/pipeline"
	"github.com/evarisis/actaflow/internal/summarizer"
	"github.com/evarisis/actaflow/internal/transcriber"
	"github.com/evarisis/actaflow/internal/transcription"
	"github.com/evarisis/actaflow/pkg/executor"
)

// CapturerFunc opens the recording device for the record command.
type CapturerFunc func(sampleRate, framesPerBuffer int, log logger.Logger) audio.Capturer

// Dependencies is filled once the config has been loaded.
type Dependencies struct {
	// NewCapturer is set by the binary; headless builds leave it nil.
	NewCapturer CapturerFunc

	ConfigPath string
	Config     *config.Config
	Logger     logger.Logger
	Executor   executor.Executor

	closer io.Closer
	client llm.Client
}

func (d *Dependencies) Load() error {
	cfg, err := config.Load(d.ConfigPath)
	if err != nil {
		return err
	}
	d.Config = cfg

	if cfg.Logging.File != "" {
		log, closer, err := logger.NewFile(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			return err
		}
		d.Logger, d.closer = log, closer
	} else {
		d.Logger = logger.New(cfg.Logging.Level)
	}
	d.Executor = executor.New()
	return nil
}

func (d *Dependencies) Close() {
	if d.closer != nil {
		d.closer.Close()
	}
}

func (d *Dependencies) Prober() connectivity.Prober {
	return connectivity.TCPProber{
		Address: d.Config.Connectivity.Address,
		Timeout: d.Config.Connectivity.Timeout,
	}
}

func (d *Dependencies) llmClient(ctx context.Context) (llm.Client, error) {
	if d.client != nil {
		return d.client, nil
	}
	client, err := llm.New(ctx, d.Config.Gemini.APIKeys, d.Config.Gemini.Model, d.Logger)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	d.client = client
	return client, nil
}

func (d *Dependencies) Summarizer(ctx context.Context) (summarizer.Summarizer, error) {
	client, err := d.llmClient(ctx)
	if err != nil {
		return nil, err
	}
	conv, err := document.NewConverter(d.Config.Summarizer.Converter, d.Executor, d.Logger)
	if err != nil {
		return nil, err
	}
	return summarizer.New(client, conv, summarizer.Options{
		Timeout:     d.Config.Summarizer.Timeout,
		Temperature: d.Config.Summarizer.Temperature,
		MaxTokens:   d.Config.Summarizer.MaxTokens,
		Suffix:      d.Config.Summarizer.Suffix,
		Elaborator:  d.Config.Organization.Secretary,
		Reviewer:    d.Config.Organization.Chair,
	}, d.Logger), nil
}

// Pipeline wires the transcription and summarization stages.
func (d *Dependencies) Pipeline(ctx context.Context) (pipeline.Pipeline, error) {
	client, err := d.llmClient(ctx)
	if err != nil {
		return nil, err
	}
	tr, err := transcriber.New(d.Config, client, d.Logger)
	if err != nil {
		return nil, err
	}
	engine := transcription.New(tr, transcription.Options{
		Timeout:  d.Config.Transcription.Timeout,
		Language: d.Config.Transcription.Language,
	}, d.Logger)

	sum, err := d.Summarizer(ctx)
	if err != nil {
		return nil, err
	}

	return pipeline.New(d.Config, engine, sum, d.Prober(), pipeline.DesktopNotifier{}, d.Logger), nil
}
