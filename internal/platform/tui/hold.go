package tui

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// DefaultHoldRelease is the longest gap between two presses of the same key
// that still counts as holding it.
const DefaultHoldRelease = 150 * time.Millisecond

// HoldTracker turns the presses a terminal sends for a key into engine start
// and stop actions. Terminals report no key release, so:
//
//   - a lone press is a tap: start and stop in the same frame, one step;
//   - a second press within the release window starts a hold;
//   - a hold ends once presses stop arriving for the release window.
type HoldTracker struct {
	release time.Duration

	dir     int // held direction, 0 when not holding
	dirSeen time.Time
	tapDir  int // direction of the last tap
	tapSeen time.Time

	soft     bool
	softSeen time.Time
	softTap  bool
	tapSoft  time.Time
}

// NewHoldTracker creates a tracker. A non-positive release uses DefaultHoldRelease.
func NewHoldTracker(release time.Duration) *HoldTracker {
	if release <= 0 {
		release = DefaultHoldRelease
	}
	return &HoldTracker{release: release}
}

func moveAction(dir int) core.Action {
	if dir < 0 {
		return core.ActionMoveLeft
	}
	return core.ActionMoveRight
}

// PressMove records a horizontal key press.
func (h *HoldTracker) PressMove(dir int, now time.Time, f *core.InputFrame) {
	if dir == 0 {
		return
	}
	switch {
	case h.dir == dir:
		// repeat of the held key
	case h.dir != 0, h.tapDir == dir && now.Sub(h.tapSeen) <= h.release:
		// switching direction mid-hold, or the second press of a hold
		h.dir = dir
		h.tapDir = 0
		f.Set(moveAction(dir))
	default:
		h.tapDir = dir
		h.tapSeen = now
		f.Set(moveAction(dir))
		f.Set(core.ActionMoveStop)
		return
	}
	h.dirSeen = now
}

// PressSoftDrop records a soft drop key press.
func (h *HoldTracker) PressSoftDrop(now time.Time, f *core.InputFrame) {
	switch {
	case h.soft:
	case h.softTap && now.Sub(h.tapSoft) <= h.release:
		h.soft = true
		h.softTap = false
		f.Set(core.ActionSoftDropStart)
	default:
		h.softTap = true
		h.tapSoft = now
		f.Set(core.ActionSoftDropStart)
		f.Set(core.ActionSoftDropStop)
		return
	}
	h.softSeen = now
}

// Expire emits stop actions for holds whose key has not repeated within the release window.
func (h *HoldTracker) Expire(now time.Time, f *core.InputFrame) {
	if h.dir != 0 && now.Sub(h.dirSeen) > h.release {
		h.dir = 0
		f.Set(core.ActionMoveStop)
	}
	if h.soft && now.Sub(h.softSeen) > h.release {
		h.soft = false
		f.Set(core.ActionSoftDropStop)
	}
}

// ReleaseAll emits stop actions for every hold and forgets pending taps.
func (h *HoldTracker) ReleaseAll(f *core.InputFrame) {
	h.tapDir = 0
	h.softTap = false
	if h.dir != 0 {
		h.dir = 0
		f.Set(core.ActionMoveStop)
	}
	if h.soft {
		h.soft = false
		f.Set(core.ActionSoftDropStop)
	}
}

// Held reports the held direction and whether soft drop is held.
func (h *HoldTracker) Held() (dir int, soft bool) {
	return h.dir, h.soft
}
