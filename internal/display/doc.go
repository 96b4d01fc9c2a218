// Package display manages the GTK4 overlay windows for the message:
// widget construction, Wayland layer-shell placement, the per-window
// reveal animation and the window-set policy across monitors.
package display
