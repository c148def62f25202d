package windows

import (
	"fmt"

	"github.com/mj1618/desktop-blur/internal/blur"
)

// unavailable wraps a failed DLL or symbol lookup as blur.ErrUnavailable.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", blur.ErrUnavailable, err)
}

// boolResult maps a Win32 BOOL return value.
func boolResult(r1 uintptr) (bool, error) {
	return r1 != 0, nil
}

// hresultResult maps an HRESULT return value. Negative values are failures.
func hresultResult(name string, r1 uintptr) (bool, error) {
	if hr := int32(uint32(r1)); hr < 0 {
		return false, fmt.Errorf("%s: HRESULT 0x%08X", name, uint32(hr))
	}
	return true, nil
}
