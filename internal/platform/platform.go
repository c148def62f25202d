package platform

import "github.com/mj1618/desktop-blur/internal/model"

// WindowLister enumerates top-level desktop windows.
type WindowLister interface {
	// ListWindows returns all windows, optionally filtered.
	ListWindows(opts ListOptions) ([]model.Window, error)
}
