package pipeline

import "github.com/gen2brain/beeep"

// Notifier shows a short message to the person at the desk.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier raises native desktop notifications.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) error { return nil }
