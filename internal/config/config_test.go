package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ModeChar, cfg.Mode)
	assert.Equal(t, 15.0, cfg.Speed)
	assert.Equal(t, 72, cfg.FontSize)
	assert.Equal(t, "#ffffff", cfg.Color)
	assert.Equal(t, "rgba(0, 0, 0, 0.0)", cfg.Background)
	assert.Equal(t, 1.0, cfg.ExitAfter)
	assert.Equal(t, RevealLeftToCenter, cfg.RevealPosition)
	assert.True(t, cfg.AllMonitors)
	assert.Empty(t, cfg.Sound)
	assert.Equal(t, 100, cfg.Volume)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
mode = "word"
speed = 30.0
font_size = 48
color = "#00ff00"
exit_after = 0.0
reveal_position = "center"
all_monitors = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeWord, cfg.Mode)
	assert.Equal(t, 30.0, cfg.Speed)
	assert.Equal(t, 48, cfg.FontSize)
	assert.Equal(t, "#00ff00", cfg.Color)
	assert.Equal(t, 0.0, cfg.ExitAfter)
	assert.Equal(t, RevealCenter, cfg.RevealPosition)
	assert.False(t, cfg.AllMonitors)

	// Values absent from the file keep their defaults.
	assert.Equal(t, DefaultBackground, cfg.Background)
	assert.Equal(t, DefaultVolume, cfg.Volume)
}

func TestLoad_RejectsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = [broken"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"word mode valid", func(c *Config) { c.Mode = ModeWord }, false},
		{"bad mode", func(c *Config) { c.Mode = "sentence" }, true},
		{"left valid", func(c *Config) { c.RevealPosition = RevealLeft }, false},
		{"bad reveal position", func(c *Config) { c.RevealPosition = "right" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClamp_Speed(t *testing.T) {
	cfg := Default()
	cfg.Speed = -5
	cfg.Clamp(nil)
	assert.Equal(t, MinSpeed, cfg.Speed)

	cfg.Speed = 0
	cfg.Clamp(nil)
	assert.Equal(t, MinSpeed, cfg.Speed)

	cfg.Speed = 20
	cfg.Clamp(nil)
	assert.Equal(t, 20.0, cfg.Speed)
}

func TestClamp_FontSizeAndVolume(t *testing.T) {
	cfg := Default()
	cfg.FontSize = 0
	cfg.Volume = 150
	cfg.Clamp(nil)
	assert.Equal(t, 1, cfg.FontSize)
	assert.Equal(t, 100, cfg.Volume)

	cfg.Volume = -1
	cfg.Clamp(nil)
	assert.Equal(t, 0, cfg.Volume)
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  time.Duration
	}{
		{"default speed", 15.0, 67 * time.Millisecond},
		{"one per second", 1.0, time.Second},
		{"very fast clamps to 1ms", 5000, time.Millisecond},
		{"zero speed uses floor rate", 0, 100 * time.Second},
		{"negative speed uses floor rate", -3, 100 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Speed = tt.speed
			assert.Equal(t, tt.want, cfg.TickInterval())
		})
	}
}

func TestExitAfterDuration(t *testing.T) {
	cfg := Default()

	cfg.ExitAfter = 0.5
	assert.Equal(t, 500*time.Millisecond, cfg.ExitAfterDuration())

	cfg.ExitAfter = 0
	assert.Equal(t, time.Duration(0), cfg.ExitAfterDuration())

	cfg.ExitAfter = -1
	assert.Equal(t, time.Duration(0), cfg.ExitAfterDuration())
}
