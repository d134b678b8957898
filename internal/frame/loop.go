// Package frame provides a cooperative, single-goroutine scheduler modelled on
// a UI event loop: microtasks drained at the end of the current turn,
// callbacks run on the next animation frame, and timers.
//
// Loop is not safe for concurrent use. It is driven by the owner of the event
// loop, e.g. a bubbletea model, which calls Drain after handling each message
// and Frame on each frame tick.
package frame

import (
	"slices"
	"time"
)

// Handle identifies a scheduled task. The zero Handle is never issued, so it
// can be used to mean "nothing scheduled".
type Handle uint64

type task struct {
	handle Handle
	fn     func()
}

type timer struct {
	task
	deadline time.Time
}

// Loop schedules deferred work.
type Loop struct {
	now  func() time.Time
	last Handle

	micro  []task
	frames []task
	timers []timer
}

type Option func(*Loop)

// WithClock overrides the clock used to compute timer deadlines.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

func NewLoop(opts ...Option) *Loop {
	l := &Loop{now: time.Now}
	for _, fn := range opts {
		fn(l)
	}
	return l
}

func (l *Loop) nextHandle() Handle {
	l.last++
	return l.last
}

// Defer schedules fn to run when the current turn of the loop is drained.
func (l *Loop) Defer(fn func()) Handle {
	h := l.nextHandle()
	l.micro = append(l.micro, task{handle: h, fn: fn})
	return h
}

// RequestFrame schedules fn to run on the next animation frame.
func (l *Loop) RequestFrame(fn func()) Handle {
	h := l.nextHandle()
	l.frames = append(l.frames, task{handle: h, fn: fn})
	return h
}

// After schedules fn to run on the first frame at or after d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	h := l.nextHandle()
	l.timers = append(l.timers, timer{
		task:     task{handle: h, fn: fn},
		deadline: l.now().Add(d),
	})
	return h
}

// Cancel removes a scheduled task. Cancelling a task that has already run, or
// has already been cancelled, is a no-op.
func (l *Loop) Cancel(h Handle) {
	if h == 0 {
		return
	}
	match := func(t task) bool { return t.handle == h }
	l.micro = slices.DeleteFunc(l.micro, match)
	l.frames = slices.DeleteFunc(l.frames, match)
	l.timers = slices.DeleteFunc(l.timers, func(t timer) bool { return t.handle == h })
}

// Drain runs microtasks until none remain, including any scheduled by the
// microtasks themselves.
func (l *Loop) Drain() {
	for len(l.micro) > 0 {
		t := l.micro[0]
		l.micro = l.micro[1:]
		t.fn()
	}
}

// Frame runs the frame callbacks that were requested before the call, then
// any timers that are due, then drains microtasks. Callbacks requested while
// the frame is running wait for the following frame.
func (l *Loop) Frame() {
	frames := l.frames
	l.frames = nil
	for _, t := range frames {
		t.fn()
	}

	now := l.now()
	var due []timer
	l.timers = slices.DeleteFunc(l.timers, func(t timer) bool {
		if !t.deadline.After(now) {
			due = append(due, t)
			return true
		}
		return false
	})
	slices.SortStableFunc(due, func(a, b timer) int {
		return a.deadline.Compare(b.deadline)
	})
	for _, t := range due {
		t.fn()
	}
	l.Drain()
}

// Pending reports whether any frame callbacks or timers are waiting to run.
// Microtasks are not included because Drain runs them synchronously.
func (l *Loop) Pending() bool {
	return len(l.frames) > 0 || len(l.timers) > 0
}
