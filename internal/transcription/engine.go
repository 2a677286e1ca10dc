package transcription

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/evarisis/actaflow/internal/document"
	"github.com/evarisis/actaflow/internal/project"
	"github.com/evarisis/actaflow/internal/transcriber"
)

var errMonitorCancelled = errors.New("cancelled by connectivity monitor")

// Run walks the dialogues in id order. Dialogues that already hold a
// transcript are reused; the manifest is checkpointed after every new
// transcript so an interrupted run resumes where it stopped.
func (e *implEngine) Run(ctx context.Context, manifestPath string, progress ProgressFunc, cancel Canceller) Result {
	if progress == nil {
		progress = func(float64, string) {}
	}

	m, err := project.Load(manifestPath)
	if err != nil {
		return Result{Message: fmt.Sprintf(msgLoad, err), Err: err}
	}

	dir := filepath.Dir(manifestPath)
	sort.SliceStable(m.Dialogues, func(i, j int) bool {
		return m.Dialogues[i].ID < m.Dialogues[j].ID
	})

	total := len(m.Dialogues)
	e.logger.Info(ctx, "Transcribing %d dialogues from %s", total, manifestPath)

	reused, called := 0, 0
	for i := range m.Dialogues {
		d := &m.Dialogues[i]

		if cancel != nil && cancel.IsSet() {
			e.logger.Warn(ctx, "Stopping before dialogue %d: connectivity lost", d.ID)
			return Result{Message: msgMonitorCancelled, Reason: ReasonCancelled, Err: errMonitorCancelled}
		}
		if err := ctx.Err(); err != nil {
			e.logger.Warn(ctx, "Stopping before dialogue %d: %v", d.ID, err)
			return Result{Message: msgAborted, Reason: ReasonCancelled, Err: err}
		}

		progress(float64(i+1)/float64(total), fmt.Sprintf(msgProcessing, i+1, total, d.Speaker))

		if !d.Pending() {
			reused++
			continue
		}

		pcm, rate, err := e.readAudio(project.AudioPath(dir, *d))
		if err != nil {
			e.logger.Error(ctx, "Failed to read audio for dialogue %d: %v", d.ID, err)
			return Result{Message: fmt.Sprintf(msgAudioRead, d.ID, err), Err: err}
		}

		called++
		out := e.transcribeIsolated(ctx, pcm, rate)
		if out.Fatal() {
			e.logger.Error(ctx, "Dialogue %d failed (%s): %s", d.ID, out.Reason, out.Detail)
			return e.fatalResult(out)
		}
		if out.Reason != ReasonNone {
			e.logger.Warn(ctx, "Dialogue %d stored as %s", d.ID, out.Reason)
		}

		d.SetTranscript(out.Render(), out.Status())
		if err := project.Save(manifestPath, m); err != nil {
			return Result{Message: fmt.Sprintf(msgCheckpoint, err), Err: err}
		}
	}

	e.logger.Info(ctx, "Transcription finished: %d new, %d reused", called, reused)

	literalPath := project.LiteralPath(dir)
	lit := document.Literal{
		Title:        m.Title,
		Date:         e.now(),
		Participants: m.Participants,
		Entries:      make([]document.Entry, 0, total),
	}
	for _, d := range m.Dialogues {
		lit.Entries = append(lit.Entries, document.Entry{ID: d.ID, Speaker: d.Speaker, Text: *d.Transcript})
	}
	if err := e.writeLiteral(literalPath, lit); err != nil {
		return Result{Message: fmt.Sprintf(msgLiteral, err), Err: err}
	}

	progress(1.0, msgCompleted)
	return Result{
		Success:     true,
		Message:     fmt.Sprintf(msgSaved, filepath.Base(dir)),
		LiteralPath: literalPath,
	}
}

func (e *implEngine) fatalResult(out Outcome) Result {
	switch out.Reason {
	case ReasonConnection:
		return Result{Message: msgConnectionLost, Reason: out.Reason, Err: errors.New(out.Detail)}
	case ReasonTimeout:
		return Result{Message: msgTimeout, Reason: out.Reason, Err: fmt.Errorf("transcription exceeded %s", e.timeout)}
	default:
		return Result{Message: msgAborted, Reason: out.Reason, Err: context.Canceled}
	}
}

type callResult struct {
	text string
	err  error
}

// transcribeIsolated runs the remote call on its own goroutine with a private
// copy of the audio. When the deadline passes the worker is abandoned: its
// reply lands in a buffered channel nobody reads.
func (e *implEngine) transcribeIsolated(ctx context.Context, pcm []byte, rate int) Outcome {
	if len(pcm) == 0 {
		return Outcome{Reason: ReasonEmptyAudio}
	}

	clip := transcriber.Clip{
		PCM:        append([]byte(nil), pcm...),
		SampleRate: rate,
		Language:   e.language,
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reply := make(chan callResult, 1)
	go func() {
		text, err := e.transcriber.Transcribe(callCtx, clip)
		reply <- callResult{text: text, err: err}
	}()

	select {
	case r := <-reply:
		return classify(r.text, r.err)
	case <-callCtx.Done():
		if ctx.Err() != nil {
			return Outcome{Reason: ReasonCancelled}
		}
		return Outcome{Reason: ReasonTimeout}
	}
}
