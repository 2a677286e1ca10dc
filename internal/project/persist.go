package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/session"
)

// ErrNoSegments is returned when a meeting ends without recorded dialogue.
var ErrNoSegments = errors.New("No se grabaron diálogos.")

// Persist writes every segment as segment_<n>.wav under dir and then the
// manifest with all transcripts pending. If any audio write fails no manifest
// is written.
func Persist(dir, title string, participants []string, segments []session.Segment, sampleRate int) (string, error) {
	if len(segments) == 0 {
		return "", ErrNoSegments
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create meeting folder: %w", err)
	}

	m := &Manifest{
		Title:        title,
		Participants: append([]string{}, participants...),
		Dialogues:    make([]Dialogue, 0, len(segments)),
	}

	for i, seg := range segments {
		id := i + 1
		name := fmt.Sprintf("segment_%d.wav", id)
		if err := audio.WriteWAV(AudioPath(dir, Dialogue{AudioFile: name}), seg.Audio, sampleRate); err != nil {
			return "", fmt.Errorf("write audio for dialogue %d: %w", id, err)
		}
		m.Dialogues = append(m.Dialogues, Dialogue{
			ID:        id,
			Speaker:   seg.Speaker,
			AudioFile: name,
		})
	}

	path := ManifestPath(dir)
	if err := Save(path, m); err != nil {
		return "", err
	}
	return path, nil
}
