// Package notify abstracts user-facing desktop notifications so callers
// receive the capability explicitly instead of reaching for a global.
package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a short out-of-band message to the user.
type Notifier interface {
	Notify(title, message string) error
}

// Func adapts a plain function to the Notifier interface.
type Func func(title, message string) error

// Notify implements Notifier.
func (f Func) Notify(title, message string) error {
	return f(title, message)
}

// Desktop sends notifications through the platform notification service.
type Desktop struct{}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify implements Notifier via beeep.
func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Discard swallows all notifications. Useful in tests and headless runs.
type Discard struct{}

// Notify implements Notifier and does nothing.
func (Discard) Notify(string, string) error {
	return nil
}
