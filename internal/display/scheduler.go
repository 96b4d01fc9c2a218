package display

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/jmylchreest/hyprmsg/internal/reveal"
)

// glibScheduler runs reveal timers as GLib sources on the GTK main loop.
type glibScheduler struct{}

var _ reveal.Scheduler = glibScheduler{}

func (glibScheduler) Repeat(interval time.Duration, fn func() bool) {
	glib.TimeoutAdd(uint(clampMillis(interval)), fn)
}

func (glibScheduler) After(delay time.Duration, fn func()) {
	glib.TimeoutAdd(uint(clampMillis(delay)), func() bool {
		fn()
		return false
	})
}

// clampMillis floors the period at 1ms; GLib treats 0 as "as fast as possible".
func clampMillis(d time.Duration) int64 {
	ms := d.Milliseconds()
	if ms < 1 {
		return 1
	}
	return ms
}
