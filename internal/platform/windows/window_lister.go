//go:build windows

package windows

import (
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/mj1618/desktop-blur/internal/model"
	"github.com/mj1618/desktop-blur/internal/platform"
	"golang.org/x/sys/windows"
)

var (
	procGetWindowRect  = user32.NewProc("GetWindowRect")
	procGetWindowTextW = user32.NewProc("GetWindowTextW")
)

// enumWindowsCallback is created once; callbacks are a finite resource.
// enumMu serializes enumerations since the callback appends to enumHandles.
var (
	enumWindowsCallback = windows.NewCallback(enumWindowsProc)
	enumMu              sync.Mutex
	enumHandles         []windows.HWND
)

func enumWindowsProc(hwnd windows.HWND, _ uintptr) uintptr {
	enumHandles = append(enumHandles, hwnd)
	return 1
}

func enumWindows() ([]windows.HWND, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	if err := windows.EnumWindows(enumWindowsCallback, nil); err != nil {
		return nil, err
	}
	handles := enumHandles
	enumHandles = nil
	return handles, nil
}

// WindowLister implements platform.WindowLister with EnumWindows.
type WindowLister struct{}

// NewWindowLister creates a new Windows window lister.
func NewWindowLister() *WindowLister {
	return &WindowLister{}
}

func (l *WindowLister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	handles, err := enumWindows()
	if err != nil {
		return nil, err
	}

	foreground := windows.GetForegroundWindow()
	exeNames := make(map[uint32]string)

	windowsOut := make([]model.Window, 0, len(handles))
	for _, hwnd := range handles {
		var pid uint32
		if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
			continue
		}
		app, ok := exeNames[pid]
		if !ok {
			app = processName(pid)
			exeNames[pid] = app
		}
		windowsOut = append(windowsOut, model.Window{
			App:     app,
			PID:     int(pid),
			Title:   windowText(hwnd),
			Class:   className(hwnd),
			ID:      int(hwnd),
			Bounds:  windowBounds(hwnd),
			Visible: windows.IsWindowVisible(hwnd),
			Focused: hwnd == foreground,
		})
	}
	return opts.Filter(windowsOut), nil
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func className(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowBounds(hwnd windows.HWND) [4]int {
	var r windows.Rect
	if ret, _, _ := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r))); ret == 0 {
		return [4]int{}
	}
	return [4]int{int(r.Left), int(r.Top), int(r.Right - r.Left), int(r.Bottom - r.Top)}
}

func processName(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return filepath.Base(windows.UTF16ToString(buf[:size]))
}
