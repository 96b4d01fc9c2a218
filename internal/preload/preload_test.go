package preload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldPreload(t *testing.T) {
	tests := []struct {
		name      string
		done      string
		disabled  string
		ldPreload string
		want      bool
	}{
		{"fresh environment", "", "", "", true},
		{"guard set", "1", "", "", false},
		{"opt-out set", "", "1", "", false},
		{"already preloaded", "", "", "/usr/lib/libgtk4-layer-shell.so.0", false},
		{"unrelated preload", "", "", "/usr/lib/libother.so", true},
		{"guard with other value", "0", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldPreload(tt.done, tt.disabled, tt.ldPreload))
		})
	}
}

func TestFindLibrary_NotInstalled(t *testing.T) {
	assert.Empty(t, findLibrary([]string{t.TempDir()}))
	assert.Empty(t, findLibrary(nil))
}

func TestFindLibrary_FindsVersionedSoname(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libgtk4-layer-shell.so.0")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.Equal(t, path, findLibrary([]string{dir}))
}

func TestFindLibrary_PrefersVersionedSoname(t *testing.T) {
	dir := t.TempDir()
	versioned := filepath.Join(dir, "libgtk4-layer-shell.so.0")
	unversioned := filepath.Join(dir, "libgtk4-layer-shell.so")
	require.NoError(t, os.WriteFile(versioned, nil, 0644))
	require.NoError(t, os.WriteFile(unversioned, nil, 0644))

	assert.Equal(t, versioned, findLibrary([]string{dir}))
}

func TestFindLibrary_SearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "libgtk4-layer-shell.so.0"), nil, 0644))

	got := findLibrary([]string{first, second})
	assert.Equal(t, filepath.Join(second, "libgtk4-layer-shell.so.0"), got)
}
