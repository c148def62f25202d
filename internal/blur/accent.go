package blur

import "unsafe"

// Window composition attribute selectors and accent states understood by
// SetWindowCompositionAttribute.
const (
	AttributeAccentPolicy uint32 = 19

	AccentEnableBlurBehind        uint32 = 3
	AccentEnableAcrylicBlurBehind uint32 = 4
)

// BlurBehindEnable marks the Enable field of BlurBehind as valid (DWM_BB_ENABLE).
const BlurBehindEnable uint32 = 0x1

// AccentPolicy mirrors the ACCENT_POLICY record read by the window manager.
// Four consecutive 32-bit words, 16 bytes, no padding. Field order is ABI.
type AccentPolicy struct {
	AccentState   uint32
	AccentFlags   uint32
	GradientColor uint32 // AABBGGRR
	AnimationID   uint32
}

// CompositionAttributeData mirrors WINDOWCOMPOSITIONATTRIBDATA.
// Data is pointer-aligned: offset 8 on 64-bit targets, 4 on 32-bit.
type CompositionAttributeData struct {
	Attribute  uint32
	Data       unsafe.Pointer
	SizeOfData uintptr
}

// BlurBehind mirrors DWM_BLURBEHIND. A zero RgnBlur applies to the whole window.
type BlurBehind struct {
	Flags                 uint32
	Enable                int32
	RgnBlur               uintptr
	TransitionOnMaximized int32
}

// newAccentDescriptor builds an acrylic accent policy and a descriptor pointing at it.
// The policy is returned so the caller can switch its state in place.
func newAccentDescriptor(tint Tint) (*AccentPolicy, *CompositionAttributeData) {
	accent := &AccentPolicy{
		AccentState:   AccentEnableAcrylicBlurBehind,
		GradientColor: tint.Gradient(),
	}
	data := &CompositionAttributeData{
		Attribute:  AttributeAccentPolicy,
		Data:       unsafe.Pointer(accent),
		SizeOfData: unsafe.Sizeof(*accent),
	}
	return accent, data
}
