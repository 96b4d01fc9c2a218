package display

import (
	"log/slog"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/hyprmsg/internal/config"
	"github.com/jmylchreest/hyprmsg/internal/reveal"
)

// MessageWindow is one overlay window showing the animated message.
type MessageWindow struct {
	window *gtk.Window
	config *config.Config
	logger *slog.Logger
	id     string

	// Widgets
	label *gtk.Label

	// Callbacks
	onQuit func()

	// State
	layerShellEnabled bool
	finalWidth        int
	controller        *reveal.Controller
}

// NewMessageWindow creates an overlay window. When monitor is non-nil and
// the layer-shell capability is present, the window is anchored edge-to-edge
// on that monitor; LayerShellEnabled reports whether that took effect.
func NewMessageWindow(app *gtk.Application, cfg *config.Config, monitor *gdk.Monitor, logger *slog.Logger) *MessageWindow {
	if logger == nil {
		logger = slog.Default()
	}

	w := &MessageWindow{
		config: cfg,
		id:     ulid.Make().String(),
	}
	w.logger = logger.With("window_id", w.id)

	w.window = gtk.NewWindow()
	w.window.SetApplication(app)
	w.window.SetTitle("hyprmsg")
	w.window.SetDecorated(false)
	w.window.SetResizable(false)

	if monitor != nil && layershell.IsSupported() {
		w.layerShellEnabled = w.setupLayerShell(monitor)
	}

	w.buildUI()
	w.attachKeys()

	tokens := reveal.Tokenize(cfg.Message, cfg.Mode)
	w.controller = reveal.NewController(
		tokens,
		cfg.TickInterval(),
		cfg.ExitAfterDuration(),
		glibScheduler{},
		w,
		w.logger,
	)
	w.controller.OnQuit(func() {
		if w.onQuit != nil {
			w.onQuit()
		}
	})

	return w
}

// setupLayerShell anchors the window full-screen on the monitor: overlay
// layer, all four edges, zero margins, zero exclusive zone, on-demand
// keyboard focus. Returns false when layer-shell init did not take effect.
func (w *MessageWindow) setupLayerShell(monitor *gdk.Monitor) bool {
	layershell.InitForWindow(w.window)
	if !layershell.IsLayerWindow(w.window) {
		return false
	}

	geometry := monitor.Geometry()
	w.window.SetDefaultSize(geometry.Width(), geometry.Height())
	w.window.SetSizeRequest(geometry.Width(), geometry.Height())

	layershell.SetNamespace(w.window, "hyprmsg")
	layershell.SetLayer(w.window, layershell.LayerShellLayerOverlay)
	layershell.SetMonitor(w.window, monitor)
	layershell.SetKeyboardMode(w.window, layershell.LayerShellKeyboardModeOnDemand)
	layershell.SetExclusiveZone(w.window, 0)

	for _, edge := range []layershell.LayerShellEdge{
		layershell.LayerShellEdgeLeft,
		layershell.LayerShellEdgeRight,
		layershell.LayerShellEdgeTop,
		layershell.LayerShellEdgeBottom,
	} {
		layershell.SetAnchor(w.window, edge, true)
		layershell.SetMargin(w.window, edge, 0)
	}

	w.logger.Debug("layer shell configured",
		"connector", monitor.Connector(),
		"width", geometry.Width(),
		"height", geometry.Height(),
	)
	return true
}

// buildUI constructs the widget tree: a filling root box, a centered inner
// box and the message label.
func (w *MessageWindow) buildUI() {
	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.AddCSSClass("hyprmsg-window")
	root.SetHAlign(gtk.AlignFill)
	root.SetVAlign(gtk.AlignFill)
	root.SetHExpand(true)
	root.SetVExpand(true)
	root.SetMarginTop(8)
	root.SetMarginBottom(8)
	root.SetMarginStart(12)
	root.SetMarginEnd(12)

	center := gtk.NewBox(gtk.OrientationVertical, 0)
	center.SetHAlign(gtk.AlignCenter)
	center.SetVAlign(gtk.AlignCenter)
	center.SetHExpand(true)
	center.SetVExpand(true)

	w.label = gtk.NewLabel("")
	w.label.AddCSSClass("hyprmsg-label")
	w.label.SetWrap(true)
	w.label.SetVAlign(gtk.AlignCenter)
	w.applyRevealPosition(false)

	center.Append(w.label)
	root.Append(center)
	w.window.SetChild(root)
}

// applyRevealPosition lays the label out for the configured policy. done
// selects the final layout, which for left-to-center releases the reserved
// width and recenters the text.
func (w *MessageWindow) applyRevealPosition(done bool) {
	switch w.config.RevealPosition {
	case config.RevealCenter:
		w.label.SetHAlign(gtk.AlignCenter)
		w.label.SetXAlign(0.5)
		w.label.SetJustify(gtk.JustifyCenter)
		w.label.SetSizeRequest(-1, -1)

	case config.RevealLeft:
		w.label.SetHAlign(gtk.AlignCenter)
		w.label.SetXAlign(0)
		w.label.SetJustify(gtk.JustifyLeft)
		w.label.SetSizeRequest(-1, -1)

	default: // left-to-center
		if done {
			w.label.SetHAlign(gtk.AlignCenter)
			w.label.SetXAlign(0.5)
			w.label.SetJustify(gtk.JustifyCenter)
			w.label.SetSizeRequest(-1, -1)
			return
		}
		w.label.SetHAlign(gtk.AlignCenter)
		w.label.SetXAlign(0)
		w.label.SetJustify(gtk.JustifyLeft)
		w.reserveFinalWidth()
	}
}

// reserveFinalWidth sizes the label to the pixel width of the fully revealed
// message so the window does not jump while tokens are appended. The full
// message is measured even in word mode; kerning of partial runs can briefly
// exceed it, which is accepted.
func (w *MessageWindow) reserveFinalWidth() {
	if w.finalWidth == 0 {
		layout := w.label.CreatePangoLayout(w.config.Message)
		width, _ := layout.PixelSize()
		w.finalWidth = width
	}
	if w.finalWidth > 0 {
		w.label.SetSizeRequest(w.finalWidth, -1)
	}
}

// attachKeys installs the key controller: Escape and Enter request full
// application shutdown from any animation state.
func (w *MessageWindow) attachKeys() {
	keyCtrl := gtk.NewEventControllerKey()
	keyCtrl.ConnectKeyPressed(func(keyval, keycode uint, state gdk.ModifierType) bool {
		switch keyval {
		case gdk.KEY_Escape, gdk.KEY_Return, gdk.KEY_KP_Enter:
			w.logger.Debug("shutdown requested by key", "keyval", keyval)
			if w.onQuit != nil {
				w.onQuit()
			}
			return true
		}
		return false
	})
	w.window.AddController(keyCtrl)
}

// SetText pushes the accumulated reveal text to the label.
func (w *MessageWindow) SetText(text string) {
	w.label.SetText(text)
	w.applyRevealPosition(false)
}

// FinishLayout applies the final reveal-position layout.
func (w *MessageWindow) FinishLayout() {
	w.applyRevealPosition(true)
}

// OnQuit sets the callback invoked when this window requests application
// shutdown, via key press or auto-close.
func (w *MessageWindow) OnQuit(cb func()) {
	w.onQuit = cb
}

// OnDone sets the callback invoked when this window's reveal completes.
func (w *MessageWindow) OnDone(cb func()) {
	w.controller.OnDone(cb)
}

// LayerShellEnabled reports whether layer-shell anchoring took effect.
func (w *MessageWindow) LayerShellEnabled() bool {
	return w.layerShellEnabled
}

// ID returns the window's instance identifier used in logs.
func (w *MessageWindow) ID() string {
	return w.id
}

// Present shows the window.
func (w *MessageWindow) Present() {
	w.window.Present()
}

// Destroy closes and releases the window.
func (w *MessageWindow) Destroy() {
	w.window.Destroy()
}

// StartAnimation starts the reveal controller. Repeated calls are no-ops.
func (w *MessageWindow) StartAnimation() {
	w.controller.Start()
}
