// Package cue schedules presentation effects: flip and outcome tones plus
// the delayed reveal of the round summary. Cues are fire-and-forget and
// operate purely on display state; nothing here can mutate the round.
package cue

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/thirtytwo/internal/game"
)

const (
	// ToneDelay is how long after a settlement the outcome tone fires,
	// leaving room for the card flip to land first.
	ToneDelay = 150 * time.Millisecond

	// SummaryDelay is the pause before the numeric summary is revealed.
	SummaryDelay = 900 * time.Millisecond
)

// Scheduler dispatches cues to a sink on a clock. The clock is injectable
// so tests can drive timers without sleeping.
type Scheduler struct {
	clock  quartz.Clock
	sink   game.CueSink
	logger *log.Logger

	mu     sync.Mutex
	timers []*quartz.Timer
}

var _ game.CueSink = (*Scheduler)(nil)

// NewScheduler creates a scheduler delivering cues to sink
func NewScheduler(clock quartz.Clock, sink game.CueSink, logger *log.Logger) *Scheduler {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		clock:  clock,
		sink:   sink,
		logger: logger.WithPrefix("cue"),
	}
}

// Play dispatches a cue. Flips sound immediately; outcome tones are delayed
// by ToneDelay so they land after the flip.
func (s *Scheduler) Play(c game.Cue) {
	if s.sink == nil {
		return
	}
	if c == game.CueFlip {
		s.sink.Play(c)
		return
	}
	s.after(ToneDelay, func() {
		s.sink.Play(c)
	})
}

// RevealSummary schedules fn after the given delay. fn must only touch
// display state; a cleared scheduler never runs it.
func (s *Scheduler) RevealSummary(after time.Duration, fn func()) {
	s.after(after, fn)
}

func (s *Scheduler) after(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var timer *quartz.Timer
	timer = s.clock.AfterFunc(d, func() {
		fn()
		s.remove(timer)
	})
	s.timers = append(s.timers, timer)
}

// remove drops a fired timer so the pending list does not grow for the
// life of the scheduler
func (s *Scheduler) remove(timer *quartz.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.timers {
		if t == timer {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Clear cancels every outstanding timer. Used when a round is ended early
// so stale cues cannot fire into the next round's display.
func (s *Scheduler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = s.timers[:0]
	s.logger.Debug("cleared pending cues")
}

// BellSink plays cues as terminal bells
type BellSink struct {
	w io.Writer
}

// NewBellSink creates a sink writing bell characters to w
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{w: w}
}

// Play writes the bell. Failures are swallowed: audio is best effort.
func (b *BellSink) Play(game.Cue) {
	_, _ = b.w.Write([]byte("\a"))
}

// Discard is a sink that drops every cue, for when sound is disabled
type Discard struct{}

func (Discard) Play(game.Cue) {}
