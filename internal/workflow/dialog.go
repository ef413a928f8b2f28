// Package workflow holds the small state machines behind multi-step screens:
// dialog visibility, the signup/OTP wizard and the refund dialog.
package workflow

import (
	"errors"
	"fmt"
)

// Visibility is the transition state of a modal dialog.
type Visibility string

const (
	Closed  Visibility = "closed"
	Opening Visibility = "opening"
	Open    Visibility = "open"
	Closing Visibility = "closing"
)

// ErrInvalidTransition is returned for a transition the current state does not allow.
var ErrInvalidTransition = errors.New("invalid transition")

// Dialog drives closed → opening → open → closing → closed. The zero value is closed.
type Dialog struct {
	state Visibility
}

func (d *Dialog) State() Visibility {
	if d.state == "" {
		return Closed
	}
	return d.state
}

func (d *Dialog) move(from []Visibility, to Visibility) error {
	cur := d.State()
	for _, f := range from {
		if cur == f {
			d.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur, to)
}

// Open starts the opening transition.
func (d *Dialog) Open() error { return d.move([]Visibility{Closed}, Opening) }

// Opened completes the opening transition.
func (d *Dialog) Opened() error { return d.move([]Visibility{Opening}, Open) }

// Close starts the closing transition; a dialog still opening may be closed.
func (d *Dialog) Close() error { return d.move([]Visibility{Opening, Open}, Closing) }

// Closed completes the closing transition.
func (d *Dialog) Closed() error { return d.move([]Visibility{Closing}, Closed) }

// Dismiss drives the dialog to closed from whatever state it is in.
func (d *Dialog) Dismiss() {
	if d.State() == Closed {
		return
	}
	if d.State() != Closing {
		_ = d.Close()
	}
	_ = d.Closed()
}

// Show drives a closed dialog straight to open.
func (d *Dialog) Show() error {
	if err := d.Open(); err != nil {
		return err
	}
	return d.Opened()
}
