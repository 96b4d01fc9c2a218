// Package preload re-executes the process with the gtk4-layer-shell library
// preloaded, so its symbols are visible to GTK before initialization. On
// compositors without layer-shell this is a no-op; the program falls back to
// a regular window either way.
package preload

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	// doneEnv guards against re-exec loops.
	doneEnv = "HYPRMSG_PRELOAD_DONE"
	// disableEnv opts out of the preload entirely.
	disableEnv = "HYPRMSG_NO_PRELOAD"

	libName = "gtk4-layer-shell"
)

// defaultSearchDirs lists where distributions commonly install the library.
var defaultSearchDirs = []string{
	"/usr/lib",
	"/usr/lib64",
	"/usr/local/lib",
	"/usr/lib/x86_64-linux-gnu",
	"/usr/lib/aarch64-linux-gnu",
}

// sonames in preference order; the versioned name is what distributions ship.
var sonames = []string{
	"libgtk4-layer-shell.so.0",
	"libgtk4-layer-shell.so",
}

// Ensure re-executes the process once with LD_PRELOAD adjusted so
// gtk4-layer-shell is loaded before GTK. It returns without side effects
// when the guard or opt-out variables are set, when LD_PRELOAD already
// names the library, or when no library file can be found. On a successful
// re-exec it does not return.
func Ensure(logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if !shouldPreload(os.Getenv(doneEnv), os.Getenv(disableEnv), os.Getenv("LD_PRELOAD")) {
		return nil
	}

	library := findLibrary(defaultSearchDirs)
	if library == "" {
		logger.Debug("gtk4-layer-shell library not found, skipping preload")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	env := append(os.Environ(),
		"LD_PRELOAD="+strings.TrimSpace(library+" "+os.Getenv("LD_PRELOAD")),
		doneEnv+"=1",
	)

	logger.Debug("re-executing with layer-shell preloaded", "library", library)
	return syscall.Exec(exe, os.Args, env)
}

// shouldPreload reports whether a preload re-exec is still needed given the
// current environment values.
func shouldPreload(done, disabled, ldPreload string) bool {
	if done == "1" || disabled == "1" {
		return false
	}
	return !strings.Contains(ldPreload, libName)
}

// findLibrary returns the first installed library path, or "" when the
// library is not present in any search directory.
func findLibrary(dirs []string) string {
	for _, dir := range dirs {
		for _, soname := range sonames {
			path := filepath.Join(dir, soname)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
