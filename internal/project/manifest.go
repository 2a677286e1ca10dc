// Package project persists a meeting as audio artifacts plus a JSON manifest.
// Once persisted, the manifest on disk is the only source of truth for a run.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const ManifestName = "proyecto_reunion.json"

// Transcript status tags. They explain why a terminal transcript holds a
// placeholder instead of recognized speech.
const (
	StatusTranscribed  = "transcribed"
	StatusEmpty        = "empty"
	StatusUnrecognized = "unrecognized"
	StatusUnexpected   = "unexpected"
)

type Manifest struct {
	Title        string     `json:"title"`
	Participants []string   `json:"participants"`
	Dialogues    []Dialogue `json:"dialogues"`
}

// Dialogue is one persisted segment. A nil Transcript means pending.
type Dialogue struct {
	ID         int     `json:"id"`
	Speaker    string  `json:"speaker"`
	AudioFile  string  `json:"audio_file"`
	Transcript *string `json:"transcript"`
	Status     string  `json:"status,omitempty"`
}

func (d *Dialogue) Pending() bool { return d.Transcript == nil }

// SetTranscript records a terminal transcript.
func (d *Dialogue) SetTranscript(text, status string) {
	d.Transcript = &text
	d.Status = status
}

// ManifestPath returns the manifest location for a meeting folder.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestName)
}

// LiteralPath is where the literal minutes of a meeting folder are written.
func LiteralPath(dir string) string {
	return filepath.Join(dir, filepath.Base(dir)+".docx")
}

// Exists reports whether dir already holds a manifest.
func Exists(dir string) bool {
	_, err := os.Stat(ManifestPath(dir))
	return err == nil
}

// AudioPath resolves a dialogue's audio file against the meeting folder.
func AudioPath(dir string, d Dialogue) string {
	if filepath.IsAbs(d.AudioFile) {
		return d.AudioFile
	}
	return filepath.Join(dir, d.AudioFile)
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found: %w", err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Save overwrites the manifest by writing a sibling temp file and renaming it
// into place, so readers never observe a partial file.
func Save(path string, m *Manifest) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+ManifestName+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}
