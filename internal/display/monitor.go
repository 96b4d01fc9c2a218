package display

import (
	"unsafe"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
)

// monitorList returns the connected monitors for the display.
func monitorList(display *gdk.Display) []*gdk.Monitor {
	if display == nil {
		return nil
	}

	items := display.Monitors()
	if items == nil {
		return nil
	}

	monitors := make([]*gdk.Monitor, 0, items.NItems())
	for i := uint(0); i < items.NItems(); i++ {
		obj := items.Item(i)
		if obj == nil {
			continue
		}
		if m := wrapMonitor(obj); m != nil {
			monitors = append(monitors, m)
		}
	}
	return monitors
}

// wrapMonitor wraps a coreglib.Object as a gdk.Monitor. gotk4 does not
// export a constructor for objects pulled out of a list model, so this
// mirrors the pointer-embedding layout the bindings use internally.
func wrapMonitor(obj *coreglib.Object) *gdk.Monitor {
	if obj == nil {
		return nil
	}
	type monitor struct {
		_ [0]func()
		*coreglib.Object
	}
	m := &monitor{Object: obj}
	return (*gdk.Monitor)(unsafe.Pointer(m))
}
