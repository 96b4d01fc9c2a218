package display

import (
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/hyprmsg/internal/config"
)

// overlayWindow is the subset of MessageWindow the window-set policy needs.
type overlayWindow interface {
	LayerShellEnabled() bool
	Destroy()
}

// windowFactory creates windows for the window-set policy.
type windowFactory interface {
	// Anchored creates a window targeting the monitor at index.
	Anchored(index int) overlayWindow
	// Plain creates an unanchored fallback window.
	Plain() overlayWindow
}

// Orchestrator decides the window set once per application activation and
// starts each window's animation exactly once.
type Orchestrator struct {
	app    *gtk.Application
	config *config.Config
	logger *slog.Logger

	windows          []*MessageWindow
	animationStarted bool

	// Callbacks
	onQuit func()
	onDone func()
}

// NewOrchestrator creates an orchestrator for the application.
func NewOrchestrator(app *gtk.Application, cfg *config.Config, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		app:    app,
		config: cfg,
		logger: logger,
	}
}

// OnQuit sets the callback invoked when any window requests shutdown.
func (o *Orchestrator) OnQuit(cb func()) {
	o.onQuit = cb
}

// OnDone sets the callback invoked each time a window's reveal completes.
func (o *Orchestrator) OnDone(cb func()) {
	o.onDone = cb
}

// Activate builds the window set on first activation and presents it.
// Repeated activations re-present the existing windows without creating
// duplicates or restarting animations.
func (o *Orchestrator) Activate() {
	if len(o.windows) == 0 {
		o.buildWindows()
	}

	for _, w := range o.windows {
		w.Present()
	}

	if o.animationStarted {
		return
	}
	o.animationStarted = true

	for _, w := range o.windows {
		w.StartAnimation()
	}
}

// Windows returns the current window set.
func (o *Orchestrator) Windows() []*MessageWindow {
	return o.windows
}

func (o *Orchestrator) buildWindows() {
	monitors := monitorList(gdk.DisplayGetDefault())
	factory := &gtkWindowFactory{
		app:      o.app,
		config:   o.config,
		logger:   o.logger,
		monitors: monitors,
	}

	built := buildWindowSet(factory, len(monitors), o.config.AllMonitors, layershell.IsSupported(), o.logger)

	o.windows = make([]*MessageWindow, 0, len(built))
	for _, w := range built {
		mw := w.(*MessageWindow)
		mw.OnQuit(func() {
			if o.onQuit != nil {
				o.onQuit()
			}
		})
		mw.OnDone(func() {
			if o.onDone != nil {
				o.onDone()
			}
		})
		o.windows = append(o.windows, mw)
	}

	o.logger.Debug("window set finalized",
		"windows", len(o.windows),
		"monitors", len(monitors),
		"all_monitors", o.config.AllMonitors,
	)
}

// buildWindowSet applies the window-set policy: one anchored window per
// monitor when requested and possible, with all-or-nothing rollback on
// partial layer-shell failure, otherwise exactly one plain window.
func buildWindowSet(factory windowFactory, monitors int, allMonitors, shellAvailable bool, logger *slog.Logger) []overlayWindow {
	var windows []overlayWindow

	if allMonitors && !shellAvailable {
		logger.Warn("layer-shell capability unavailable, falling back to a single window")
	}

	if allMonitors && shellAvailable {
		for i := 0; i < monitors; i++ {
			w := factory.Anchored(i)
			if !w.LayerShellEnabled() {
				w.Destroy()
				for _, prev := range windows {
					prev.Destroy()
				}
				windows = nil
				logger.Warn("layer-shell init failed, falling back to a single window",
					"monitor", i,
					"hint", "try LD_PRELOAD=libgtk4-layer-shell.so.0",
				)
				break
			}
			windows = append(windows, w)
		}
	}

	if len(windows) == 0 {
		windows = append(windows, factory.Plain())
	}
	return windows
}

// gtkWindowFactory builds real MessageWindows for the policy.
type gtkWindowFactory struct {
	app      *gtk.Application
	config   *config.Config
	logger   *slog.Logger
	monitors []*gdk.Monitor
}

func (f *gtkWindowFactory) Anchored(index int) overlayWindow {
	return NewMessageWindow(f.app, f.config, f.monitors[index], f.logger)
}

func (f *gtkWindowFactory) Plain() overlayWindow {
	return NewMessageWindow(f.app, f.config, nil, f.logger)
}
