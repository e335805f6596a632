package scene

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sketchy/pkg/errors"
)

var namedColors = map[string]color.NRGBA{
	"black": {A: 0xff},
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":   {R: 0xe6, G: 0x39, B: 0x46, A: 0xff},
	"green": {R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff},
	"blue":  {R: 0x1d, G: 0x35, B: 0x57, A: 0xff},
	"gray":  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"grey":  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// ParseColor parses a colour name or hex string.
//
// Accepted forms are the names black, white, red, green, blue, gray (grey),
// "#rgb", "#rrggbb" and "#rrggbbaa". The empty string, "none" and
// "transparent" return nil, which disables the pass the colour belongs to.
func ParseColor(s string) (*color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return nil, nil
	}
	if c, ok := namedColors[s]; ok {
		return &c, nil
	}

	alpha := uint8(0xff)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if s[0] != '#' || (len(s) != 4 && len(s) != 7) {
		return nil, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return &color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when it is translucent.
// A nil colour formats as "none".
func FormatColor(c *color.NRGBA) string {
	if c == nil {
		return "none"
	}
	hex := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	if c.A != 0xff {
		hex += strconv.FormatUint(uint64(c.A)|0x100, 16)[1:]
	}
	return hex
}
