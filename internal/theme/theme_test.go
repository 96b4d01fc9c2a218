package theme

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/hyprmsg/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildCSS(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "#ff8800"
	cfg.Background = "rgba(0, 0, 0, 0.5)"
	cfg.FontSize = 48

	css := BuildCSS(cfg)

	assert.Contains(t, css, "background: rgba(0, 0, 0, 0.5);")
	assert.Contains(t, css, "color: #ff8800;")
	assert.Contains(t, css, "font-size: 48px;")
	assert.Contains(t, css, "font-weight: 700;")
	assert.Contains(t, css, "label.hyprmsg-label")
}

func TestComposeCSS_NoUserFile(t *testing.T) {
	base := "window { background: black; }"

	assert.Equal(t, base, composeCSS(base, "", testLogger()))
	assert.Equal(t, base, composeCSS(base, "/nonexistent/style.css", testLogger()))
}

func TestComposeCSS_UserFileAppended(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	override := "label { font-style: italic; }"
	require.NoError(t, os.WriteFile(path, []byte(override), 0600))

	base := "window { background: black; }"
	css := composeCSS(base, path, testLogger())

	assert.Contains(t, css, base)
	assert.Contains(t, css, override)
	assert.Less(t, strings.Index(css, base), strings.Index(css, override),
		"user rules must come after generated rules so they win")
}

func TestUserCSSPath_HonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "hyprmsg", "style.css"), UserCSSPath())
}
