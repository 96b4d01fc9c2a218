package reveal

import (
	"log/slog"
	"time"
)

// State identifies the controller's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateAnimating
	StateDone
	StateClosing
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateDone:
		return "done"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Scheduler abstracts the event-loop timers the controller runs on.
// The production implementation wraps GLib timeout sources; tests drive
// the callbacks manually.
type Scheduler interface {
	// Repeat invokes fn every interval until fn returns false.
	Repeat(interval time.Duration, fn func() bool)
	// After invokes fn once after delay.
	After(delay time.Duration, fn func())
}

// Surface receives the accumulated text and the final layout transition.
// The production implementation is the GTK message window.
type Surface interface {
	SetText(text string)
	FinishLayout()
}

// Controller drives one window's reveal animation: it appends one token per
// tick, applies the final layout when the sequence is exhausted, and
// optionally schedules the auto-close.
type Controller struct {
	tokens    []string
	interval  time.Duration
	exitAfter time.Duration

	sched   Scheduler
	surface Surface
	logger  *slog.Logger

	// Callbacks
	onDone func()
	onQuit func()

	// State
	state         State
	index         int
	text          string
	exitScheduled bool
}

// NewController creates a controller for the given token sequence.
// exitAfter <= 0 disables auto-close.
func NewController(tokens []string, interval, exitAfter time.Duration, sched Scheduler, surface Surface, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		tokens:    tokens,
		interval:  interval,
		exitAfter: exitAfter,
		sched:     sched,
		surface:   surface,
		logger:    logger,
	}
}

// OnDone sets the callback invoked when the reveal completes.
func (c *Controller) OnDone(cb func()) {
	c.onDone = cb
}

// OnQuit sets the callback invoked when the auto-close timer fires.
func (c *Controller) OnQuit(cb func()) {
	c.onQuit = cb
}

// Start begins the reveal. An empty token sequence goes straight to Done
// without a single tick. Calling Start again is a no-op.
func (c *Controller) Start() {
	if c.state != StateIdle {
		return
	}

	if len(c.tokens) == 0 {
		c.finish()
		return
	}

	c.state = StateAnimating
	c.logger.Debug("reveal started", "tokens", len(c.tokens), "interval", c.interval)
	c.sched.Repeat(c.interval, c.tick)
}

// tick appends the next token. Returning false cancels the repeating timer;
// the tick that consumes the last token is also the last tick.
func (c *Controller) tick() bool {
	if c.state != StateAnimating {
		return false
	}

	c.text += c.tokens[c.index]
	c.index++
	c.surface.SetText(c.text)

	if c.index >= len(c.tokens) {
		c.finish()
		return false
	}
	return true
}

// finish transitions to Done, applies the final layout once and schedules
// the auto-close if configured.
func (c *Controller) finish() {
	c.state = StateDone
	c.surface.FinishLayout()
	c.logger.Debug("reveal finished", "tokens", c.index)

	if c.onDone != nil {
		c.onDone()
	}

	c.scheduleExit()
}

// scheduleExit arms the one-shot auto-close timer at most once.
func (c *Controller) scheduleExit() {
	if c.exitAfter <= 0 || c.exitScheduled {
		return
	}
	c.exitScheduled = true

	c.sched.After(c.exitAfter, func() {
		c.state = StateClosing
		c.logger.Debug("auto-close fired", "after", c.exitAfter)
		if c.onQuit != nil {
			c.onQuit()
		}
	})
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Index returns how many tokens have been revealed.
func (c *Controller) Index() int {
	return c.index
}

// Text returns the accumulated revealed text.
func (c *Controller) Text() string {
	return c.text
}

// ExitScheduled reports whether the auto-close timer has been armed.
func (c *Controller) ExitScheduled() bool {
	return c.exitScheduled
}
