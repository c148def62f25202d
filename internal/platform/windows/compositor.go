//go:build windows

package windows

import (
	"unsafe"

	"github.com/mj1618/desktop-blur/internal/blur"
	"golang.org/x/sys/windows"
)

// The DLLs are loaded on first use and stay loaded for the life of the
// process; LazyDLL never frees its module handle.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procSetWindowCompositionAttribute = user32.NewProc("SetWindowCompositionAttribute")
	procDwmEnableBlurBehindWindow     = dwmapi.NewProc("DwmEnableBlurBehindWindow")
)

// Compositor implements blur.Compositor with raw user32/dwmapi calls.
type Compositor struct{}

// NewCompositor creates a new Windows compositor.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// SetWindowCompositionAttribute calls the undocumented user32 entry point.
func (c *Compositor) SetWindowCompositionAttribute(hwnd uintptr, data *blur.CompositionAttributeData) (bool, error) {
	if err := procSetWindowCompositionAttribute.Find(); err != nil {
		return false, unavailable(err)
	}
	r1, _, _ := procSetWindowCompositionAttribute.Call(hwnd, uintptr(unsafe.Pointer(data)))
	return boolResult(r1)
}

// EnableBlurBehindWindow calls DwmEnableBlurBehindWindow. A negative HRESULT
// is reported as an error.
func (c *Compositor) EnableBlurBehindWindow(hwnd uintptr, bb *blur.BlurBehind) (bool, error) {
	if err := procDwmEnableBlurBehindWindow.Find(); err != nil {
		return false, unavailable(err)
	}
	r1, _, _ := procDwmEnableBlurBehindWindow.Call(hwnd, uintptr(unsafe.Pointer(bb)))
	return hresultResult("DwmEnableBlurBehindWindow", r1)
}
