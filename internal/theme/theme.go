// Package theme generates and applies the CSS for the overlay windows.
package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmylchreest/hyprmsg/internal/config"
)

// BuildCSS renders the stylesheet for the configured colors and font size.
// Color values are opaque CSS strings; GTK's CSS parser validates them.
func BuildCSS(cfg *config.Config) string {
	return fmt.Sprintf(`window {
    background: %s;
}
box, label {
    background: transparent;
}
label.hyprmsg-label {
    color: %s;
    font-size: %dpx;
    font-weight: 700;
}
`, cfg.Background, cfg.Color, cfg.FontSize)
}

// UserCSSPath returns the location of the optional user override stylesheet.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func UserCSSPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hyprmsg", "style.css")
}

// composeCSS appends the user override after the generated CSS so user rules
// win. A missing override file is not an error.
func composeCSS(base, userPath string, logger *slog.Logger) string {
	if userPath == "" {
		return base
	}

	data, err := os.ReadFile(userPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read user stylesheet", "path", userPath, "error", err)
		}
		return base
	}

	logger.Debug("user stylesheet appended", "path", userPath)
	return base + "\n" + string(data)
}
