package model

// Window represents a top-level desktop window. ID is the native window handle.
type Window struct {
	App     string `yaml:"app"               json:"app"`
	PID     int    `yaml:"pid"               json:"pid"`
	Title   string `yaml:"title"             json:"title"`
	Class   string `yaml:"class,omitempty"   json:"class,omitempty"`
	ID      int    `yaml:"id"                json:"id"`
	Bounds  [4]int `yaml:"bounds,flow"       json:"bounds"`
	Visible bool   `yaml:"visible"           json:"visible"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}
