//go:build windows

package windows

import "github.com/mj1618/desktop-blur/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			WindowLister: NewWindowLister(),
			Compositor:   NewCompositor(),
		}, nil
	}
}
