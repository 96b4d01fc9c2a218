package theme

import (
	"log/slog"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/hyprmsg/internal/config"
)

// Loader owns the process-wide CSS provider and reloads it when the user
// override stylesheet changes.
type Loader struct {
	mu       sync.Mutex
	logger   *slog.Logger
	provider *gtk.CSSProvider
	baseCSS  string
	userPath string
}

// NewLoader creates a theme loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:   logger,
		provider: gtk.NewCSSProvider(),
		userPath: UserCSSPath(),
	}
}

// Load builds the stylesheet from the config plus the user override file and
// loads it into the provider.
func (l *Loader) Load(cfg *config.Config) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.baseCSS = BuildCSS(cfg)
	l.provider.LoadFromString(composeCSS(l.baseCSS, l.userPath, l.logger))
}

// Reload re-reads the user override and refreshes the provider. The
// generated base CSS is kept as-is.
func (l *Loader) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.provider.LoadFromString(composeCSS(l.baseCSS, l.userPath, l.logger))
	l.logger.Info("stylesheet reloaded", "path", l.userPath)
}

// Apply attaches the provider to the display at application priority.
func (l *Loader) Apply(display *gdk.Display) {
	if display == nil {
		display = gdk.DisplayGetDefault()
	}
	if display == nil {
		l.logger.Warn("no display available, cannot apply styles")
		return
	}

	gtk.StyleContextAddProviderForDisplay(
		display,
		l.provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	l.logger.Debug("styles applied to display")
}

// UserPath returns the watched override stylesheet location.
func (l *Loader) UserPath() string {
	return l.userPath
}
