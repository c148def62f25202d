package blur

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultTint is a semi-transparent dark grey.
const DefaultTint Tint = 0x7F1E1E1E

// defaultNamedAlpha is applied to tints given by color name.
const defaultNamedAlpha uint8 = 0x7F

// Tint is an ARGB color, alpha in the top byte.
type Tint uint32

// Alpha returns the alpha byte.
func (t Tint) Alpha() uint8 { return uint8(t >> 24) }

// RGB returns the red, green and blue components.
func (t Tint) RGB() (r, g, b uint8) {
	return uint8(t >> 16), uint8(t >> 8), uint8(t)
}

// WithAlpha returns t with its alpha byte replaced.
func (t Tint) WithAlpha(a uint8) Tint {
	return Tint(uint32(t)&0x00FFFFFF | uint32(a)<<24)
}

// Gradient packs the tint into the AABBGGRR word the accent policy expects.
// Acrylic only activates with a non-zero alpha, so a transparent tint yields
// the default gradient instead.
func (t Tint) Gradient() uint32 {
	if t.Alpha() == 0 {
		t = DefaultTint
	}
	r, g, b := t.RGB()
	return uint32(t.Alpha())<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// String formats the tint as #AARRGGBB.
func (t Tint) String() string {
	return fmt.Sprintf("#%08X", uint32(t))
}

// MarshalYAML implements yaml.Marshaler.
func (t Tint) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tint) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tint) UnmarshalText(b []byte) error {
	v, err := ParseTint(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTint parses "#RRGGBB", "#AARRGGBB", "0xAARRGGBB" or a color name such
// as "slategray". Six-digit and named colors get an alpha of 0x7F.
func ParseTint(s string) (Tint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty tint")
	}

	var hex string
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	default:
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return 0, fmt.Errorf("unknown tint %q: expected #RRGGBB, #AARRGGBB or a color name", s)
		}
		return Tint(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)).WithAlpha(defaultNamedAlpha), nil
	}

	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid tint %q: expected 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid tint %q: %w", s, err)
	}
	t := Tint(v)
	if len(hex) == 6 {
		t = t.WithAlpha(defaultNamedAlpha)
	}
	if t.Alpha() == 0 {
		return 0, fmt.Errorf("invalid tint %q: alpha must be non-zero", s)
	}
	return t, nil
}
