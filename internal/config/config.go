// Package config handles configuration defaults, file loading and validation.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Mode selects the reveal granularity.
type Mode string

const (
	ModeChar Mode = "char"
	ModeWord Mode = "word"
)

// RevealPosition selects how the label is laid out while animating.
type RevealPosition string

const (
	RevealLeftToCenter RevealPosition = "left-to-center"
	RevealCenter       RevealPosition = "center"
	RevealLeft         RevealPosition = "left"
)

// Default configuration values.
const (
	DefaultMode           = ModeChar
	DefaultSpeed          = 15.0
	DefaultFontSize       = 72
	DefaultColor          = "#ffffff"
	DefaultBackground     = "rgba(0, 0, 0, 0.0)"
	DefaultExitAfter      = 1.0
	DefaultRevealPosition = RevealLeftToCenter
	DefaultVolume         = 100

	// MinSpeed is the floor applied to non-positive speeds instead of
	// rejecting them.
	MinSpeed = 0.01
)

// Config holds the effective settings for one invocation.
// Precedence: defaults, then the TOML config file, then explicitly-set flags.
type Config struct {
	// Message is positional input, never read from the config file.
	Message string `toml:"-"`

	Mode           Mode           `toml:"mode"`
	Speed          float64        `toml:"speed"`
	FontSize       int            `toml:"font_size"`
	Color          string         `toml:"color"`
	Background     string         `toml:"background"`
	ExitAfter      float64        `toml:"exit_after"`
	RevealPosition RevealPosition `toml:"reveal_position"`
	AllMonitors    bool           `toml:"all_monitors"`
	Sound          string         `toml:"sound"`
	Volume         int            `toml:"volume"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Mode:           DefaultMode,
		Speed:          DefaultSpeed,
		FontSize:       DefaultFontSize,
		Color:          DefaultColor,
		Background:     DefaultBackground,
		ExitAfter:      DefaultExitAfter,
		RevealPosition: DefaultRevealPosition,
		AllMonitors:    true,
		Sound:          "",
		Volume:         DefaultVolume,
	}
}

// Path returns the default config file location.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hyprmsg", "config.toml")
}

// Load reads the config file at path, falling back to Path() when empty.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate rejects unknown enumeration values. Numeric ranges are handled by
// Clamp, not here.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeChar, ModeWord:
	default:
		return fmt.Errorf("invalid mode %q, must be one of: %s, %s", c.Mode, ModeChar, ModeWord)
	}

	switch c.RevealPosition {
	case RevealLeftToCenter, RevealCenter, RevealLeft:
	default:
		return fmt.Errorf("invalid reveal position %q, must be one of: %s, %s, %s",
			c.RevealPosition, RevealLeftToCenter, RevealCenter, RevealLeft)
	}

	return nil
}

// Clamp applies floors to degenerate numeric values instead of rejecting
// them, and sanity-checks hex colors early.
func (c *Config) Clamp(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	if c.Speed < MinSpeed {
		logger.Warn("speed clamped", "requested", c.Speed, "minimum", MinSpeed)
		c.Speed = MinSpeed
	}
	if c.FontSize < 1 {
		logger.Warn("font size clamped", "requested", c.FontSize, "minimum", 1)
		c.FontSize = 1
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 100 {
		c.Volume = 100
	}

	warnOnBadHex(c.Color, "color", logger)
	warnOnBadHex(c.Background, "background", logger)
}

// warnOnBadHex flags hex colors that will not parse. Everything else,
// rgba() syntax included, is left to the GTK CSS parser.
func warnOnBadHex(value, name string, logger *slog.Logger) {
	if !strings.HasPrefix(value, "#") {
		return
	}
	// GTK also accepts 8-digit hex with alpha, which go-colorful does not.
	if len(value) != 4 && len(value) != 7 {
		return
	}
	if _, err := colorful.Hex(value); err != nil {
		logger.Warn("color does not parse as hex, passing through to GTK",
			"flag", name, "value", value)
	}
}

// TickInterval returns the reveal timer period for the configured speed:
// max(1ms, round(1000 / max(speed, MinSpeed))) milliseconds.
func (c *Config) TickInterval() time.Duration {
	rate := math.Max(c.Speed, MinSpeed)
	ms := math.Round(1000 / rate)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

// ExitAfterDuration converts the exit-after seconds to a duration.
// Zero or negative disables auto-close.
func (c *Config) ExitAfterDuration() time.Duration {
	if c.ExitAfter <= 0 {
		return 0
	}
	return time.Duration(c.ExitAfter * float64(time.Second))
}
