package model

import "strings"

// Target selects a single window. Zero fields are ignored.
type Target struct {
	App      string
	Window   string
	WindowID int
	PID      int
}

// IsZero reports whether no selector is set.
func (t Target) IsZero() bool {
	return t.App == "" && t.Window == "" && t.WindowID == 0 && t.PID == 0
}

// Matches reports whether w satisfies every selector in t.
// App and Window are case-insensitive substring matches.
func (t Target) Matches(w Window) bool {
	if t.WindowID != 0 && w.ID != t.WindowID {
		return false
	}
	if t.PID != 0 && w.PID != t.PID {
		return false
	}
	if t.App != "" && !strings.Contains(strings.ToLower(w.App), strings.ToLower(t.App)) {
		return false
	}
	if t.Window != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(t.Window)) {
		return false
	}
	return true
}

// MatchWindow returns the first window matching t. Focused windows win over
// visible ones, and visible ones over hidden ones.
func MatchWindow(windows []Window, t Target) (Window, bool) {
	best := -1
	bestRank := -1
	for i, w := range windows {
		if !t.Matches(w) {
			continue
		}
		rank := 0
		if w.Visible {
			rank++
		}
		if w.Focused {
			rank += 2
		}
		if rank > bestRank {
			best, bestRank = i, rank
		}
	}
	if best < 0 {
		return Window{}, false
	}
	return windows[best], true
}
