package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/evarisis/actaflow/internal/connectivity"
	"github.com/evarisis/actaflow/internal/project"
	"github.com/evarisis/actaflow/internal/session"
	"github.com/evarisis/actaflow/internal/summarizer"
	"github.com/google/uuid"
)

const (
	msgNoSession = "No hay una reunión activa para procesar."
	msgPersist   = "Error al guardar el proyecto: %v"
	msgRetry     = "El progreso ha sido guardado. Revise su conexión a internet y vuelva a intentarlo."
	notifyTitle  = "Asistente de Actas"
)

// Process orchestrates the entire meeting pipeline
func (p *implPipeline) Process(ctx context.Context, meetingDir string, sess *session.Session, sink Sink) Report {
	startTime := time.Now()
	runID := uuid.NewString()

	relay := NewRelay(16, sink)
	defer relay.Close()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "[%s] Starting meeting processing: %s", runID, meetingDir)
	p.logger.Info(ctx, "========================================")

	// Step 1: Persist, unless a previous run already did
	manifestPath := project.ManifestPath(meetingDir)
	if project.Exists(meetingDir) {
		p.logger.Info(ctx, "[%s] Existing project found, resuming", runID)
	} else {
		if sess == nil {
			return p.finish(ctx, Report{RunID: runID, Message: msgNoSession})
		}
		path, err := project.Persist(meetingDir, sess.Title, sess.Participants, sess.Queue.Snapshot(), p.cfg.Audio.SampleRate)
		if err != nil {
			msg := fmt.Sprintf(msgPersist, err)
			if errors.Is(err, project.ErrNoSegments) {
				msg = err.Error()
			}
			return p.finish(ctx, Report{RunID: runID, Message: msg, Err: err})
		}
		manifestPath = path
		p.logger.Info(ctx, "[%s] Project persisted: %s", runID, manifestPath)
	}

	if !p.prober.Probe(ctx) {
		p.logger.Warn(ctx, "[%s] No connectivity before transcription; progress is saved and can be resumed", runID)
	}

	// Step 2: Transcribe under the connectivity monitor
	sig := connectivity.NewSignal()
	stopMonitor := p.monitor.Start(ctx, sig)
	tr := p.engine.Run(ctx, manifestPath, relay.stage(StageTranscription), sig)
	stopMonitor()

	if !tr.Success {
		p.logger.Error(ctx, "[%s] Transcription failed: %v", runID, tr.Err)
		return p.finish(ctx, Report{
			RunID:   runID,
			Message: tr.Message + "\n" + msgRetry,
			Err:     tr.Err,
		})
	}

	// Step 3: Official minutes
	m, err := project.Load(manifestPath)
	if err != nil {
		return p.finish(ctx, Report{RunID: runID, Partial: true, LiteralPath: tr.LiteralPath, Message: tr.Message, Err: err})
	}
	sr := p.summarizer.Run(ctx, tr.LiteralPath, summarizer.Meeting{
		Title:        m.Title,
		Participants: m.Participants,
		Date:         p.now(),
	}, relay.stage(StageSummarization))

	report := Report{
		RunID:        runID,
		LiteralPath:  tr.LiteralPath,
		OfficialPath: sr.OfficialPath,
		Message:      tr.Message + "\n" + sr.Message,
	}
	if sr.Success {
		report.Success = true
	} else {
		report.Partial = true
		report.Err = sr.Err
		p.logger.Warn(ctx, "[%s] Official minutes failed, literal minutes kept: %v", runID, sr.Err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "[%s] Literal minutes: %s", runID, report.LiteralPath)
	if report.OfficialPath != "" {
		p.logger.Info(ctx, "[%s] Official minutes: %s", runID, report.OfficialPath)
	}
	p.logger.Info(ctx, "[%s] Processing time: %s", runID, time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return p.finish(ctx, report)
}

func (p *implPipeline) finish(ctx context.Context, r Report) Report {
	title := notifyTitle
	switch {
	case r.Success:
		title += ": acta completada"
	case r.Partial:
		title += ": acta literal lista"
	default:
		title += ": proceso detenido"
	}
	if p.cfg.Notifications.Enabled {
		if err := p.notifier.Notify(title, r.Message); err != nil {
			p.logger.Warn(ctx, "Failed to send notification: %v", err)
		}
	}
	return r
}

// Pending is true when the folder has a manifest and either a pending
// dialogue or a missing output document.
func (p *implPipeline) Pending(meetingDir string) bool {
	m, err := project.Load(project.ManifestPath(meetingDir))
	if err != nil {
		return false
	}
	for _, d := range m.Dialogues {
		if d.Pending() {
			return true
		}
	}
	literal := project.LiteralPath(meetingDir)
	if _, err := os.Stat(literal); err != nil {
		return true
	}
	if _, err := os.Stat(summarizer.OfficialPath(literal, p.cfg.Summarizer.Suffix)); err != nil {
		return true
	}
	return false
}
