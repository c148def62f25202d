package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/mj1618/desktop-blur/internal/blur"
	"github.com/mj1618/desktop-blur/internal/model"
	"github.com/mj1618/desktop-blur/internal/platform"
)

type fakeLister struct {
	windows []model.Window
	err     error
	calls   int
}

func (f *fakeLister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return opts.Filter(f.windows), nil
}

type fakeCompositor struct {
	accentOK  bool
	dwmOK     bool
	hwnds     []uintptr
	gradients []uint32
}

func (f *fakeCompositor) SetWindowCompositionAttribute(hwnd uintptr, data *blur.CompositionAttributeData) (bool, error) {
	f.hwnds = append(f.hwnds, hwnd)
	f.gradients = append(f.gradients, (*blur.AccentPolicy)(data.Data).GradientColor)
	return f.accentOK, nil
}

func (f *fakeCompositor) EnableBlurBehindWindow(hwnd uintptr, bb *blur.BlurBehind) (bool, error) {
	f.hwnds = append(f.hwnds, hwnd)
	return f.dwmOK, nil
}

func sampleWindows() []model.Window {
	return []model.Window{
		{App: "notepad.exe", PID: 20, Title: "notes.txt - Notepad", ID: 0x200, Visible: true},
		{App: "WindowsTerminal.exe", PID: 30, Title: "PowerShell", ID: 0x300, Visible: true, Focused: true},
		{App: "svchost.exe", PID: 40, Title: "", ID: 0x400},
	}
}

// withProvider registers p as the platform provider for the duration of the test.
func withProvider(t *testing.T, p *platform.Provider) {
	t.Helper()
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) { return p, nil }
	t.Cleanup(func() { platform.NewProviderFunc = orig })
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}
