package audit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an opaque sRGB color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string { return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B) }

// Luminance is the relative luminance of c.
func (c RGB) Luminance() float64 { return RelativeLuminance(c.R, c.G, c.B) }

// White is the assumed canvas color when no ancestor paints a background.
var White = RGB{255, 255, 255}

// RelativeLuminance converts 8-bit sRGB channels to relative luminance in [0,1].
func RelativeLuminance(r, g, b uint8) float64 {
	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b)
}

func linear(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns (lighter+0.05)/(darker+0.05); always >= 1.
func ContrastRatio(lum1, lum2 float64) float64 {
	hi, lo := math.Max(lum1, lum2), math.Min(lum1, lum2)
	return (hi + 0.05) / (lo + 0.05)
}

// Color is a parsed CSS color with alpha.
type Color struct {
	RGB
	Alpha float64
}

// Transparent reports whether the color paints nothing.
func (c Color) Transparent() bool { return c.Alpha == 0 }

var namedColors = map[string]RGB{
	"black":      {0, 0, 0},
	"white":      {255, 255, 255},
	"red":        {255, 0, 0},
	"green":      {0, 128, 0},
	"blue":       {0, 0, 255},
	"yellow":     {255, 255, 0},
	"orange":     {255, 165, 0},
	"purple":     {128, 0, 128},
	"gray":       {128, 128, 128},
	"grey":       {128, 128, 128},
	"silver":     {192, 192, 192},
	"lightgray":  {211, 211, 211},
	"lightgrey":  {211, 211, 211},
	"darkgray":   {169, 169, 169},
	"darkgrey":   {169, 169, 169},
	"navy":       {0, 0, 128},
	"maroon":     {128, 0, 0},
	"teal":       {0, 128, 128},
	"olive":      {128, 128, 0},
	"lime":       {0, 255, 0},
	"aqua":       {0, 255, 255},
	"fuchsia":    {255, 0, 255},
	"whitesmoke": {245, 245, 245},
}

// ParseColor understands rgb()/rgba() in comma or space syntax, #rgb, #rgba, #rrggbb,
// #rrggbbaa, the transparent keyword and a small set of named colors.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return Color{}, false
	case s == "transparent":
		return Color{Alpha: 0}, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	}
	if c, ok := namedColors[s]; ok {
		return Color{RGB: c, Alpha: 1}, true
	}
	return Color{}, false
}

func parseHex(h string) (Color, bool) {
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	alpha := 1.0
	if len(h) == 8 {
		alpha = float64(v&0xff) / 255
		v >>= 8
	}
	return Color{RGB: RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, Alpha: alpha}, true
}

func parseRGBFunc(s string) (Color, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return Color{}, false
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : end])
	parts := strings.Fields(body)
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := channel(parts[i])
		if !ok {
			return Color{}, false
		}
		ch[i] = v
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, ok := alphaValue(parts[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}
	return Color{RGB: RGB{ch[0], ch[1], ch[2]}, Alpha: alpha}, true
}

func channel(p string) (uint8, bool) {
	pct := strings.HasSuffix(p, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
	if err != nil {
		return 0, false
	}
	if pct {
		f = f * 255 / 100
	}
	return uint8(math.Round(math.Max(0, math.Min(255, f)))), true
}

func alphaValue(p string) (float64, bool) {
	pct := strings.HasSuffix(p, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
	if err != nil {
		return 0, false
	}
	if pct {
		f /= 100
	}
	return math.Max(0, math.Min(1, f)), true
}
