package platform

import (
	"fmt"
	"runtime"

	"github.com/mj1618/desktop-blur/internal/blur"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	WindowLister WindowLister
	Compositor   blur.Compositor
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("desktop-blur is not supported on %s/%s; supported: windows/amd64, windows/arm64, windows/386", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
