// Package stepper plays back a generated instruction sequence one step at a
// time, with manual previous/next navigation and timed automatic playback.
package stepper

import (
	"time"

	"github.com/mudassir0002/CD-Project/pkg/tac"
)

//go:generate mockgen -write_package_comment=false -source=stepper.go -package=stepper -destination=mock_listener_test.go

// DefaultDelay is the pause between automatic advances until the front end
// configures its own.
const DefaultDelay = 700 * time.Millisecond

// MinDelay bounds how fast automatic playback may run.
const MinDelay = 100 * time.Millisecond

// Listener is notified of cursor movement. Front ends implement it to redraw.
type Listener interface {
	// OnStep fires after every cursor move, manual or automatic. pos is the
	// 0-based index of the now-current instruction.
	OnStep(ins tac.Instruction, pos int)
	// OnFinished fires once when playback reaches the final instruction.
	OnFinished()
}

// Stepper walks a fully materialized program. The program is treated as
// immutable; the stepper never modifies or reslices it. It does no sleeping
// of its own: the front end's frame loop or ticker feeds wall-clock time into
// Tick, which keeps the stepper synchronous and testable.
type Stepper struct {
	prog     tac.Program
	pos      int
	playing  bool
	finished bool
	delay    time.Duration
	lastStep time.Time
	listener Listener
}

// New creates a stepper positioned on the first instruction of prog.
func New(prog tac.Program) *Stepper {
	return &Stepper{prog: prog, delay: DefaultDelay}
}

// SetListener installs l. A nil listener disables notifications.
func (s *Stepper) SetListener(l Listener) {
	s.listener = l
}

// SetDelay configures the automatic playback delay, clamped to MinDelay.
func (s *Stepper) SetDelay(d time.Duration) {
	if d < MinDelay {
		d = MinDelay
	}
	s.delay = d
}

// Delay returns the configured automatic playback delay.
func (s *Stepper) Delay() time.Duration {
	return s.delay
}

// Len returns the program length.
func (s *Stepper) Len() int {
	return len(s.prog)
}

// Pos returns the 0-based index of the current instruction.
func (s *Stepper) Pos() int {
	return s.pos
}

// Current returns the instruction under the cursor. ok is false for an empty
// program.
func (s *Stepper) Current() (tac.Instruction, bool) {
	if len(s.prog) == 0 {
		return tac.Instruction{}, false
	}
	return s.prog[s.pos], true
}

// Playing reports whether automatic playback is running.
func (s *Stepper) Playing() bool {
	return s.playing
}

// Done reports whether the cursor sits on the final instruction.
func (s *Stepper) Done() bool {
	return len(s.prog) == 0 || s.pos == len(s.prog)-1
}

// Next advances one instruction. At the end of the program it stops playback
// and fires OnFinished the first time instead of moving.
func (s *Stepper) Next() {
	if len(s.prog) == 0 {
		return
	}
	if s.pos >= len(s.prog)-1 {
		s.playing = false
		if !s.finished {
			s.finished = true
			if s.listener != nil {
				s.listener.OnFinished()
			}
		}
		return
	}
	s.pos++
	s.notify()
}

// Prev moves back one instruction, saturating at the start.
func (s *Stepper) Prev() {
	if s.pos == 0 {
		return
	}
	s.pos--
	s.finished = false
	s.notify()
}

// Reset returns to the first instruction and stops playback.
func (s *Stepper) Reset() {
	s.playing = false
	s.finished = false
	if len(s.prog) == 0 {
		return
	}
	s.pos = 0
	s.notify()
}

// Play starts automatic playback. Starting on the final instruction is a
// no-op.
func (s *Stepper) Play() {
	if s.Done() {
		return
	}
	s.playing = true
	s.lastStep = time.Time{}
}

// Pause stops automatic playback, keeping the cursor where it is.
func (s *Stepper) Pause() {
	s.playing = false
}

// Tick drives automatic playback. The caller passes the current time; the
// stepper advances once per elapsed delay while playing.
func (s *Stepper) Tick(now time.Time) {
	if !s.playing {
		return
	}
	if s.lastStep.IsZero() {
		s.lastStep = now
		return
	}
	if now.Sub(s.lastStep) >= s.delay {
		s.lastStep = now
		s.Next()
	}
}

func (s *Stepper) notify() {
	if s.listener != nil {
		s.listener.OnStep(s.prog[s.pos], s.pos)
	}
}
