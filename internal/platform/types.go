package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/desktop-blur/internal/model"
)

// ListOptions controls window listing.
type ListOptions struct {
	PID         int    // Filter by PID
	App         string // Filter by executable name substring
	VisibleOnly bool   // Skip hidden windows
}

// Filter applies the options to an already enumerated window list.
func (o ListOptions) Filter(windows []model.Window) []model.Window {
	t := model.Target{PID: o.PID, App: o.App}
	out := []model.Window{}
	for _, w := range windows {
		if o.VisibleOnly && !w.Visible {
			continue
		}
		if t.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// ParseWindowID parses a native window handle given in decimal or 0x-prefixed hex.
// Handles that do not fit in an int on this architecture are rejected.
func ParseWindowID(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid window id %q: must be non-zero", s)
	}
	return int(v), nil
}

// ResolveWindow finds the single window selected by t. When only a window ID
// is given the handle is passed through without enumerating windows.
func ResolveWindow(lister WindowLister, t model.Target) (model.Window, error) {
	if t.IsZero() {
		return model.Window{}, fmt.Errorf("specify --app, --window, --window-id, or --pid")
	}
	if t.WindowID != 0 && t.App == "" && t.Window == "" && t.PID == 0 {
		return model.Window{ID: t.WindowID}, nil
	}
	if lister == nil {
		return model.Window{}, fmt.Errorf("window listing not available on this platform")
	}
	windows, err := lister.ListWindows(ListOptions{})
	if err != nil {
		return model.Window{}, fmt.Errorf("failed to list windows: %w", err)
	}
	w, ok := model.MatchWindow(windows, t)
	if !ok {
		return model.Window{}, fmt.Errorf("no window found matching %s", describeTarget(t))
	}
	return w, nil
}

func describeTarget(t model.Target) string {
	var parts []string
	if t.App != "" {
		parts = append(parts, fmt.Sprintf("app %q", t.App))
	}
	if t.Window != "" {
		parts = append(parts, fmt.Sprintf("title %q", t.Window))
	}
	if t.WindowID != 0 {
		parts = append(parts, fmt.Sprintf("id 0x%X", t.WindowID))
	}
	if t.PID != 0 {
		parts = append(parts, fmt.Sprintf("pid %d", t.PID))
	}
	return strings.Join(parts, ", ")
}
