package session

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const guestSuffix = " (Público)"

// Session is one live meeting: its metadata and the recorded segments.
type Session struct {
	Title        string
	Participants []string
	Queue        *Queue
}

func New(title string, participants []string) *Session {
	return &Session{Title: title, Participants: participants, Queue: &Queue{}}
}

// DefaultTitle returns the title proposed for a meeting held at t.
func DefaultTitle(t time.Time) string {
	return fmt.Sprintf("Acta Reunión Gerencia - %s", t.Format("02-01-2006"))
}

// FolderName turns a meeting title into a single path element.
func FolderName(title string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", ":", "-")
	name := strings.TrimSpace(r.Replace(title))
	if name == "" || name == "." || name == ".." {
		return "Reunión"
	}
	return name
}

// GuestSpeaker labels a public attendee. Blank names become the anonymous guest.
func GuestSpeaker(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Invitado Anónimo"
	}
	return name + guestSuffix
}

// Participants merges the roster selection with the current user and the
// chair, dropping duplicates and blanks, sorted lexicographically.
func Participants(selected []string, currentUser, chair string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, s := range selected {
		add(s)
	}
	add(currentUser)
	add(chair)
	sort.Strings(out)
	return out
}
