package pipeline

import (
	"time"

	"github.com/evarisis/actaflow/internal/config"
	"github.com/evarisis/actaflow/internal/connectivity"
	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/internal/summarizer"
	"github.com/evarisis/actaflow/internal/transcription"
)

type implPipeline struct {
	cfg        *config.Config
	engine     transcription.Engine
	summarizer summarizer.Summarizer
	prober     connectivity.Prober
	monitor    *connectivity.Monitor
	notifier   Notifier
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Pipeline instance
func New(cfg *config.Config, engine transcription.Engine, sum summarizer.Summarizer, prober connectivity.Prober, notifier Notifier, log logger.Logger) Pipeline {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &implPipeline{
		cfg:        cfg,
		engine:     engine,
		summarizer: sum,
		prober:     prober,
		monitor:    connectivity.NewMonitor(prober, cfg.Connectivity.Interval, log),
		notifier:   notifier,
		logger:     log,
		now:        time.Now,
	}
}
