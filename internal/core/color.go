package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color used for plot lines, axes and labels.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors.
var (
	ColorBlack   = RGB(0x00, 0x00, 0x00)
	ColorWhite   = RGB(0xff, 0xff, 0xff)
	ColorRed     = RGB(0xff, 0x00, 0x00)
	ColorGreen   = RGB(0x00, 0x80, 0x00)
	ColorBlue    = RGB(0x00, 0x00, 0xff)
	ColorYellow  = RGB(0xff, 0xff, 0x00)
	ColorMagenta = RGB(0xff, 0x00, 0xff)
	ColorCyan    = RGB(0x00, 0xff, 0xff)
	ColorOrange  = RGB(0xff, 0xa5, 0x00)
	ColorGray    = RGB(0x80, 0x80, 0x80)
	ColorPurple  = RGB(0x80, 0x00, 0x80)
	ColorBrown   = RGB(0xa5, 0x2a, 0x2a)
	ColorNavy    = RGB(0x00, 0x00, 0x80)
	ColorTeal    = RGB(0x00, 0x80, 0x80)
	ColorMaroon  = RGB(0x80, 0x00, 0x00)
	ColorOlive   = RGB(0x80, 0x80, 0x00)
)

// NamedColor pairs a Color with a display name.
type NamedColor struct {
	Name  string
	Color Color
}

// Palette is the set of colors offered by the color pickers, in display order.
var Palette = []NamedColor{
	{"Black", ColorBlack},
	{"Gray", ColorGray},
	{"Red", ColorRed},
	{"Maroon", ColorMaroon},
	{"Orange", ColorOrange},
	{"Brown", ColorBrown},
	{"Yellow", ColorYellow},
	{"Olive", ColorOlive},
	{"Green", ColorGreen},
	{"Teal", ColorTeal},
	{"Cyan", ColorCyan},
	{"Blue", ColorBlue},
	{"Navy", ColorNavy},
	{"Purple", ColorPurple},
	{"Magenta", ColorMagenta},
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements color.Color so a Color can be handed directly to image
// and ebiten drawing functions.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ParseColor parses "#rrggbb", "rrggbb", "#rgb" or a palette name
// (case-insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("color: empty value")
	}
	for _, nc := range Palette {
		if strings.EqualFold(nc.Name, s) {
			return nc.Color, nil
		}
	}
	if strings.EqualFold(s, "white") {
		return ColorWhite, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("color: invalid value %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color: invalid value %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
