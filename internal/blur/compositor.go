package blur

import "errors"

// ErrUnavailable reports that an OS library or entry point could not be resolved
// on this OS build. It is never surfaced by Apply; the attempt simply fails.
var ErrUnavailable = errors.New("entry point unavailable")

// Compositor is the narrow port to the OS calls that apply window effects.
// The windows platform package provides the real implementation.
type Compositor interface {
	// SetWindowCompositionAttribute submits data to the window. It returns
	// an error wrapping ErrUnavailable when the entry point cannot be resolved.
	SetWindowCompositionAttribute(hwnd uintptr, data *CompositionAttributeData) (bool, error)

	// EnableBlurBehindWindow calls the compositor's documented blur-behind API.
	EnableBlurBehindWindow(hwnd uintptr, bb *BlurBehind) (bool, error)
}
