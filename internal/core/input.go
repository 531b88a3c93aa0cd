package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, W, Up - start, flap, restart
	ActionSubmit          // Enter - submit the name entry
	ActionDismiss         // Escape - close the game over dialog without saving
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionSubmit:
		return "Submit"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DefaultReleaseAfter is how long a key stays held after its last key event.
const DefaultReleaseAfter = 120 * time.Millisecond

// HoldTracker turns a stream of key presses into press/release edges.
//
// Terminals report key presses (and autorepeats) but never releases, so a
// release is inferred once no press has been seen for ReleaseAfter.
type HoldTracker struct {
	ReleaseAfter time.Duration

	held      bool
	pressedAt time.Time // start of the current hold
	lastSeen  time.Time // most recent press or autorepeat
}

// NewHoldTracker creates a tracker with the given release window.
// A non-positive window selects DefaultReleaseAfter.
func NewHoldTracker(releaseAfter time.Duration) *HoldTracker {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &HoldTracker{ReleaseAfter: releaseAfter}
}

// Press records a key event. It returns true only for the leading edge of a
// hold; autorepeats while held return false.
func (h *HoldTracker) Press(now time.Time) bool {
	h.lastSeen = now
	if h.held {
		return false
	}
	h.held = true
	h.pressedAt = now
	return true
}

// Poll checks for an inferred release. It returns true exactly once per hold,
// together with how long the key was held.
func (h *HoldTracker) Poll(now time.Time) (released bool, heldFor time.Duration) {
	if !h.held || now.Sub(h.lastSeen) <= h.ReleaseAfter {
		return false, 0
	}
	h.held = false
	return true, h.lastSeen.Sub(h.pressedAt)
}

// Held reports whether the key is currently considered down.
func (h *HoldTracker) Held() bool {
	return h.held
}

// HeldFor returns how long the current hold has lasted, or zero when released.
func (h *HoldTracker) HeldFor(now time.Time) time.Duration {
	if !h.held {
		return 0
	}
	return now.Sub(h.pressedAt)
}

// LastSeen returns the time of the most recent key event.
func (h *HoldTracker) LastSeen() time.Time {
	return h.lastSeen
}

// Reset forgets any hold in progress.
func (h *HoldTracker) Reset() {
	h.held = false
	h.pressedAt = time.Time{}
	h.lastSeen = time.Time{}
}
