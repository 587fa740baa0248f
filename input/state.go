package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
)

// Tracker turns key presses into held-key state
//
// Terminals never report key release, so a direction stays held for a window
// after its last press: KeyHoldInitial for a fresh press (covering the
// auto-repeat delay) and KeyHoldRepeat for presses arriving while already held
type Tracker struct {
	initial time.Duration
	repeat  time.Duration

	leftUntil  time.Time
	rightUntil time.Time
	quit       bool
}

// NewTracker creates a tracker with the given hold windows
func NewTracker(initial, repeat time.Duration) *Tracker {
	return &Tracker{
		initial: initial,
		repeat:  repeat,
	}
}

// HandleEvent records one terminal event received at now
// Returns the classified intent so callers can react to resize
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) IntentType {
	intent := Classify(ev)
	switch intent {
	case IntentQuit:
		t.quit = true
	case IntentLeft:
		t.leftUntil = t.extend(t.leftUntil, now)
		// Only the last pressed key auto-repeats, the other one was let go
		t.rightUntil = time.Time{}
	case IntentRight:
		t.rightUntil = t.extend(t.rightUntil, now)
		t.leftUntil = time.Time{}
	}
	return intent
}

func (t *Tracker) extend(until, now time.Time) time.Time {
	if now.Before(until) {
		if next := now.Add(t.repeat); next.After(until) {
			return next
		}
		return until
	}
	return now.Add(t.initial)
}

// Close marks the input source as gone, which reads as quit
func (t *Tracker) Close() {
	t.quit = true
}

// Intent returns the held-key state at now
func (t *Tracker) Intent(now time.Time) core.Intent {
	return core.Intent{
		Left:  now.Before(t.leftUntil),
		Right: now.Before(t.rightUntil),
		Quit:  t.quit,
	}
}
