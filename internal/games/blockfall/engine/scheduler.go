package engine

import (
	"math"
	"time"
)

// Timing holds the drop and repeat intervals.
type Timing struct {
	BaseDrop        time.Duration // auto-drop interval at level 1
	LevelMultiplier float64       // fractional speed-up per level
	SoftDrop        time.Duration // drop interval while soft-dropping
	MoveRepeat      time.Duration // repeat interval for a held direction
}

// DefaultTiming returns the standard timing.
func DefaultTiming() Timing {
	return Timing{
		BaseDrop:        time.Second,
		LevelMultiplier: 0.1,
		SoftDrop:        100 * time.Millisecond,
		MoveRepeat:      100 * time.Millisecond,
	}
}

// DropInterval returns the auto-drop interval for a level:
//
//	BaseDrop × (1 − LevelMultiplier)^(level−1)
//
// The result is never below one nanosecond.
func (t Timing) DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	factor := math.Pow(1-t.LevelMultiplier, float64(level-1))
	return max(time.Nanosecond, time.Duration(float64(t.BaseDrop)*factor))
}

// DropMode is the scheduler's drop state.
type DropMode int

const (
	DropIdle DropMode = iota // auto-drop only
	DropSoft                 // player is holding soft drop
)

// String returns the mode name.
func (m DropMode) String() string {
	if m == DropSoft {
		return "soft"
	}
	return "idle"
}

// Scheduler decides when gravity and held-direction repeats act.
// Its clock only advances through Advance, so a caller that stops calling it
// freezes all timing.
type Scheduler struct {
	timing   Timing
	level    int
	mode     DropMode
	moveDir  int
	now      time.Duration
	lastDrop time.Duration
	lastMove time.Duration
}

// NewScheduler creates a scheduler at level 1.
func NewScheduler(t Timing) *Scheduler {
	return &Scheduler{timing: t, level: 1}
}

// Reset rewinds the clock and clears held inputs.
func (s *Scheduler) Reset(level int) {
	s.level = max(1, level)
	s.mode = DropIdle
	s.moveDir = 0
	s.now = 0
	s.lastDrop = 0
	s.lastMove = 0
}

// Advance moves the game clock forward.
func (s *Scheduler) Advance(elapsed time.Duration) {
	if elapsed > 0 {
		s.now += elapsed
	}
}

// Now returns the game clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// SetLevel changes the level used for the auto-drop interval.
func (s *Scheduler) SetLevel(level int) {
	s.level = max(1, level)
}

// Mode returns the current drop mode.
func (s *Scheduler) Mode() DropMode {
	return s.mode
}

// StartSoftDrop switches to the fast repeat interval.
func (s *Scheduler) StartSoftDrop() {
	s.mode = DropSoft
}

// StopSoftDrop returns to level-based auto-drop.
func (s *Scheduler) StopSoftDrop() {
	s.mode = DropIdle
}

// SetMove records the held horizontal direction; 0 stops repeating.
func (s *Scheduler) SetMove(dir int) {
	s.moveDir = sign(dir)
}

// MoveDir returns the held horizontal direction.
func (s *Scheduler) MoveDir() int {
	return s.moveDir
}

// ResetHolds clears soft drop and the held direction.
func (s *Scheduler) ResetHolds() {
	s.mode = DropIdle
	s.moveDir = 0
}

// Interval returns the drop interval in effect.
func (s *Scheduler) Interval() time.Duration {
	if s.mode == DropSoft {
		return s.timing.SoftDrop
	}
	return s.timing.DropInterval(s.level)
}

// DropDue reports whether more than one drop interval has passed since the last drop.
func (s *Scheduler) DropDue() bool {
	return s.now-s.lastDrop > s.Interval()
}

// MoveDue reports whether a held direction should repeat.
func (s *Scheduler) MoveDue() bool {
	return s.moveDir != 0 && s.now-s.lastMove > s.timing.MoveRepeat
}

// MarkDrop records a drop at the current time.
func (s *Scheduler) MarkDrop() {
	s.lastDrop = s.now
}

// MarkMove records a horizontal move at the current time.
func (s *Scheduler) MarkMove() {
	s.lastMove = s.now
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
