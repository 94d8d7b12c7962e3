package shape

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an opaque color. Shapes carry no alpha.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
)

// RGBA converts to the image/color representation.
func (c RGB) RGBA() color.RGBA { return color.RGBA{c.R, c.G, c.B, 255} }

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// FromColor drops alpha from any color.Color.
func FromColor(c color.Color) RGB {
	n := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB{n.R, n.G, n.B}
}

// NamedColor pairs a display name with its value.
type NamedColor struct {
	Name  string
	Color RGB
}

// Palette is the set of colors offered by the toolbar and the colors command.
var Palette = []NamedColor{
	{"Black", RGB{0, 0, 0}},
	{"White", RGB{255, 255, 255}},
	{"Red", RGB{255, 0, 0}},
	{"Lime", RGB{0, 255, 0}},
	{"Blue", RGB{0, 0, 255}},
	{"Yellow", RGB{255, 255, 0}},
	{"Cyan", RGB{0, 255, 255}},
	{"Magenta", RGB{255, 0, 255}},
	{"Maroon", RGB{128, 0, 0}},
	{"Green", RGB{0, 128, 0}},
	{"Navy", RGB{0, 0, 128}},
	{"Olive", RGB{128, 128, 0}},
	{"Teal", RGB{0, 128, 128}},
	{"Purple", RGB{128, 0, 128}},
	{"Silver", RGB{192, 192, 192}},
	{"Gray", RGB{128, 128, 128}},
}

// PaletteIndex returns the palette slot holding c, or -1.
func PaletteIndex(c RGB) int {
	for i, p := range Palette {
		if p.Color == c {
			return i
		}
	}
	return -1
}

// ParseColor accepts #RRGGBB, #RGB, a palette name or any SVG color name.
func ParseColor(s string) (RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return RGB{}, fmt.Errorf("color cannot be empty")
	}
	for _, p := range Palette {
		if strings.EqualFold(p.Name, name) {
			return p.Color, nil
		}
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}
	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
		}
	}
	return RGB{}, fmt.Errorf("invalid color %q", s)
}

// ColorNames returns every name ParseColor accepts, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colornames.Names)+len(Palette))
	seen := map[string]bool{}
	for _, p := range Palette {
		n := strings.ToLower(p.Name)
		seen[n] = true
		names = append(names, n)
	}
	for _, n := range colornames.Names {
		if !seen[n] {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
