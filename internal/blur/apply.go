package blur

import (
	"errors"
	"fmt"
)

// Method names the mechanism that applied the effect.
type Method string

const (
	MethodNone       Method = "none"
	MethodAcrylic    Method = "acrylic"
	MethodBlurBehind Method = "blur-behind"
	MethodCompositor Method = "compositor"
)

// Options configures Apply. The zero value uses DefaultTint.
type Options struct {
	Tint Tint
}

// Step records one OS call made by Apply.
type Step struct {
	Method      Method `yaml:"method"                json:"method"`
	OK          bool   `yaml:"ok"                    json:"ok"`
	Unavailable bool   `yaml:"unavailable,omitempty" json:"unavailable,omitempty"`
	Error       string `yaml:"error,omitempty"       json:"error,omitempty"`
}

// Result describes the outcome of Apply.
type Result struct {
	Applied bool   `yaml:"applied" json:"applied"`
	Method  Method `yaml:"method"  json:"method"`
	Steps   []Step `yaml:"steps"   json:"steps"`
}

// ApplyOverlayBlur applies a blur-behind effect to the window and reports
// whether any mechanism succeeded. Failure is cosmetic; callers continue
// without the effect.
func ApplyOverlayBlur(c Compositor, hwnd uintptr) bool {
	return Apply(c, hwnd, Options{}).Applied
}

// Apply tries, in order: the acrylic accent policy, the same policy switched
// to plain blur-behind, and the compositor's blur-behind API. It stops at the
// first success. Nothing is retained between calls.
func Apply(c Compositor, hwnd uintptr, opts Options) Result {
	res := Result{Method: MethodNone, Steps: []Step{}}

	if m, ok := tryAccent(c, hwnd, opts.Tint, &res); ok {
		res.Applied = true
		res.Method = m
		return res
	}
	if tryCompositor(c, hwnd, &res) {
		res.Applied = true
		res.Method = MethodCompositor
	}
	return res
}

func tryAccent(c Compositor, hwnd uintptr, tint Tint, res *Result) (Method, bool) {
	accent, data := newAccentDescriptor(tint)

	ok, err := c.SetWindowCompositionAttribute(hwnd, data)
	if res.record(hwnd, MethodAcrylic, ok, err) {
		return MethodAcrylic, true
	}
	if errors.Is(err, ErrUnavailable) {
		return MethodNone, false
	}

	accent.AccentState = AccentEnableBlurBehind
	ok, err = c.SetWindowCompositionAttribute(hwnd, data)
	if res.record(hwnd, MethodBlurBehind, ok, err) {
		return MethodBlurBehind, true
	}
	return MethodNone, false
}

func tryCompositor(c Compositor, hwnd uintptr, res *Result) bool {
	bb := &BlurBehind{
		Flags:  BlurBehindEnable,
		Enable: 1,
	}
	ok, err := c.EnableBlurBehindWindow(hwnd, bb)
	return res.record(hwnd, MethodCompositor, ok, err)
}

// record appends a step and reports whether the call succeeded.
func (r *Result) record(hwnd uintptr, m Method, ok bool, err error) bool {
	step := Step{Method: m, OK: ok && err == nil}
	if err != nil {
		step.Error = err.Error()
		step.Unavailable = errors.Is(err, ErrUnavailable)
	}
	r.Steps = append(r.Steps, step)

	Logger().Debug("blur attempt",
		"hwnd", fmt.Sprintf("0x%X", hwnd),
		"method", string(m),
		"ok", step.OK,
		"err", err,
	)
	return step.OK
}
