package blur

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"unsafe"
)

type call struct {
	kind          string // "accent" or "compositor"
	hwnd          uintptr
	accentState   uint32
	gradientColor uint32
	sizeOfData    uintptr
	attribute     uint32
	bbFlags       uint32
	bbEnable      int32
	bbRegion      uintptr
}

// fakeCompositor returns queued results and records each call. The accent
// policy is copied at call time since Apply mutates it between attempts.
type fakeCompositor struct {
	accentResults []bool
	accentErr     error
	dwmResult     bool
	dwmErr        error
	calls         []call
}

func (f *fakeCompositor) SetWindowCompositionAttribute(hwnd uintptr, data *CompositionAttributeData) (bool, error) {
	if errors.Is(f.accentErr, ErrUnavailable) {
		return false, f.accentErr
	}
	policy := (*AccentPolicy)(data.Data)
	f.calls = append(f.calls, call{
		kind:          "accent",
		hwnd:          hwnd,
		accentState:   policy.AccentState,
		gradientColor: policy.GradientColor,
		sizeOfData:    data.SizeOfData,
		attribute:     data.Attribute,
	})
	n := len(f.calls) - 1
	ok := n < len(f.accentResults) && f.accentResults[n]
	return ok, f.accentErr
}

func (f *fakeCompositor) EnableBlurBehindWindow(hwnd uintptr, bb *BlurBehind) (bool, error) {
	f.calls = append(f.calls, call{
		kind:     "compositor",
		hwnd:     hwnd,
		bbFlags:  bb.Flags,
		bbEnable: bb.Enable,
		bbRegion: bb.RgnBlur,
	})
	return f.dwmResult, f.dwmErr
}

func (f *fakeCompositor) kinds() string {
	var parts []string
	for _, c := range f.calls {
		parts = append(parts, c.kind)
	}
	return strings.Join(parts, ",")
}

func TestApplyOverlayBlur_AcrylicSucceeds(t *testing.T) {
	f := &fakeCompositor{accentResults: []bool{true}}
	if !ApplyOverlayBlur(f, 0x1234) {
		t.Fatal("expected success")
	}
	if got := f.kinds(); got != "accent" {
		t.Fatalf("calls = %q, want %q", got, "accent")
	}
	c := f.calls[0]
	if c.hwnd != 0x1234 {
		t.Errorf("hwnd = 0x%X, want 0x1234", c.hwnd)
	}
	if c.accentState != AccentEnableAcrylicBlurBehind {
		t.Errorf("accent state = %d, want %d", c.accentState, AccentEnableAcrylicBlurBehind)
	}
	if c.attribute != AttributeAccentPolicy {
		t.Errorf("attribute = %d, want %d", c.attribute, AttributeAccentPolicy)
	}
	if c.sizeOfData != unsafe.Sizeof(AccentPolicy{}) {
		t.Errorf("size = %d, want %d", c.sizeOfData, unsafe.Sizeof(AccentPolicy{}))
	}
}

func TestApplyOverlayBlur_PlainBlurRetrySucceeds(t *testing.T) {
	f := &fakeCompositor{accentResults: []bool{false, true}}
	if !ApplyOverlayBlur(f, 1) {
		t.Fatal("expected success")
	}
	if got := f.kinds(); got != "accent,accent" {
		t.Fatalf("calls = %q, want %q", got, "accent,accent")
	}
	if f.calls[0].accentState != AccentEnableAcrylicBlurBehind {
		t.Errorf("first attempt state = %d, want acrylic", f.calls[0].accentState)
	}
	if f.calls[1].accentState != AccentEnableBlurBehind {
		t.Errorf("retry state = %d, want blur-behind", f.calls[1].accentState)
	}
	if f.calls[0].gradientColor != f.calls[1].gradientColor {
		t.Error("retry should reuse the same policy")
	}
}

func TestApplyOverlayBlur_CompositorFallback(t *testing.T) {
	f := &fakeCompositor{dwmResult: true}
	if !ApplyOverlayBlur(f, 1) {
		t.Fatal("expected success from compositor fallback")
	}
	if got := f.kinds(); got != "accent,accent,compositor" {
		t.Fatalf("calls = %q", got)
	}
	c := f.calls[2]
	if c.bbFlags != BlurBehindEnable || c.bbEnable != 1 {
		t.Errorf("blur-behind flags=%d enable=%d, want %d/1", c.bbFlags, c.bbEnable, BlurBehindEnable)
	}
	if c.bbRegion != 0 {
		t.Errorf("blur-behind region = %d, want 0 (whole window)", c.bbRegion)
	}
}

func TestApplyOverlayBlur_AllFail(t *testing.T) {
	f := &fakeCompositor{}
	if ApplyOverlayBlur(f, 1) {
		t.Fatal("expected failure")
	}
	if len(f.calls) != 3 {
		t.Fatalf("expected 3 foreign calls, got %d (%s)", len(f.calls), f.kinds())
	}
	if got := f.kinds(); got != "accent,accent,compositor" {
		t.Errorf("calls = %q", got)
	}
}

func TestApplyOverlayBlur_SymbolUnavailable(t *testing.T) {
	f := &fakeCompositor{
		accentErr: fmt.Errorf("%w: SetWindowCompositionAttribute", ErrUnavailable),
	}
	if ApplyOverlayBlur(f, 1) {
		t.Fatal("expected failure")
	}
	if got := f.kinds(); got != "compositor" {
		t.Fatalf("calls = %q, want exactly one compositor call", got)
	}
}

func TestApplyOverlayBlur_EverythingUnavailable(t *testing.T) {
	f := &fakeCompositor{
		accentErr: ErrUnavailable,
		dwmErr:    fmt.Errorf("%w: dwmapi.dll", ErrUnavailable),
	}
	if ApplyOverlayBlur(f, 1) {
		t.Fatal("expected failure")
	}
}

func TestApply_OSRejectionStillRetries(t *testing.T) {
	f := &fakeCompositor{
		accentResults: []bool{false, false},
		accentErr:     errors.New("access denied"),
		dwmResult:     true,
	}
	res := Apply(f, 1, Options{})
	if !res.Applied || res.Method != MethodCompositor {
		t.Fatalf("got applied=%v method=%s", res.Applied, res.Method)
	}
	if len(res.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(res.Steps))
	}
	if res.Steps[0].Error != "access denied" || res.Steps[0].Unavailable {
		t.Errorf("step 0 = %+v", res.Steps[0])
	}
}

func TestApply_OKWithErrorIsFailure(t *testing.T) {
	f := &fakeCompositor{accentResults: []bool{true, true}, accentErr: errors.New("odd")}
	res := Apply(f, 1, Options{})
	if res.Method == MethodAcrylic {
		t.Error("a call returning an error must not count as success")
	}
}

func TestApply_ResultMethod(t *testing.T) {
	tests := []struct {
		name    string
		f       *fakeCompositor
		applied bool
		method  Method
		steps   int
	}{
		{"acrylic", &fakeCompositor{accentResults: []bool{true}}, true, MethodAcrylic, 1},
		{"blur-behind", &fakeCompositor{accentResults: []bool{false, true}}, true, MethodBlurBehind, 2},
		{"compositor", &fakeCompositor{dwmResult: true}, true, MethodCompositor, 3},
		{"none", &fakeCompositor{}, false, MethodNone, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Apply(tt.f, 1, Options{})
			if res.Applied != tt.applied {
				t.Errorf("applied = %v, want %v", res.Applied, tt.applied)
			}
			if res.Method != tt.method {
				t.Errorf("method = %s, want %s", res.Method, tt.method)
			}
			if len(res.Steps) != tt.steps {
				t.Errorf("steps = %d, want %d", len(res.Steps), tt.steps)
			}
		})
	}
}

func TestApply_GradientAlphaNonZero(t *testing.T) {
	tints := []Tint{0, DefaultTint, 0x00FF0000, 0x01000000, 0xFF102030}
	for _, tint := range tints {
		f := &fakeCompositor{accentResults: []bool{true}}
		Apply(f, 1, Options{Tint: tint})
		if len(f.calls) == 0 {
			t.Fatalf("tint %s: no calls", tint)
		}
		if f.calls[0].gradientColor>>24 == 0 {
			t.Errorf("tint %s: gradient 0x%08X has zero alpha", tint, f.calls[0].gradientColor)
		}
	}
}

func TestApply_DefaultGradient(t *testing.T) {
	f := &fakeCompositor{accentResults: []bool{true}}
	ApplyOverlayBlur(f, 1)
	if f.calls[0].gradientColor != 0x7F1E1E1E {
		t.Errorf("gradient = 0x%08X, want 0x7F1E1E1E", f.calls[0].gradientColor)
	}
}

func TestApply_Logs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	ApplyOverlayBlur(&fakeCompositor{accentResults: []bool{true}}, 0xAB)

	out := buf.String()
	if !strings.Contains(out, "method=acrylic") || !strings.Contains(out, "hwnd=0xAB") {
		t.Errorf("unexpected log output: %s", out)
	}
}
