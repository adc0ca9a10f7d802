package frame

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color strings that are not three hex
// byte-pairs, with or without a leading '#'.
var ErrInvalidColor = errors.New("frame: invalid color")

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale dims every channel by brightness with integer truncation: v*b/256,
// so 128 on a full channel yields 127. Brightness 255 passes the color
// through untouched.
func (c RGB) Scale(brightness uint8) RGB {
	if brightness == 255 {
		return c
	}
	b := int(brightness)
	return RGB{
		R: uint8(int(c.R) * b / 256),
		G: uint8(int(c.G) * b / 256),
		B: uint8(int(c.B) * b / 256),
	}
}

// FromHSV converts hue (degrees), saturation and value in [0,1] to RGB.
func FromHSV(h, s, v float64) RGB {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return RGB{R: r, G: g, B: b}
}
