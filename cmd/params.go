package cmd

import (
	"strconv"

	"github.com/mj1618/desktop-blur/internal/platform"
)

// StringParam reads a string argument from an MCP tool call.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// IntParam reads an integer argument. JSON numbers arrive as float64.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// BoolParam reads a boolean argument.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// WindowIDParam reads a window handle given as a number or a decimal/hex string.
func WindowIDParam(params map[string]interface{}, key string) (int, error) {
	if s, ok := params[key].(string); ok {
		if s == "" {
			return 0, nil
		}
		return platform.ParseWindowID(s)
	}
	return IntParam(params, key, 0), nil
}
