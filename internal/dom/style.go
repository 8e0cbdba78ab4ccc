package dom

import (
	"strconv"
	"strings"
)

// Style is the subset of resolved style the audit and the advisor read.
// Values use CSS syntax, e.g. "rgb(17, 17, 17)" or "none".
type Style struct {
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
	Opacity         string `json:"opacity"`
	Visibility      string `json:"visibility"`
	Display         string `json:"display"`
	FontSize        string `json:"fontSize"`
	Position        string `json:"position"`
	Width           string `json:"width"`
	Height          string `json:"height"`
}

const (
	defaultColor      = "rgb(0, 0, 0)"
	defaultBackground = "rgba(0, 0, 0, 0)"
)

// StyleOf returns the resolved style of h.
func (d *Document) StyleOf(h Handle) Style {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.styles[h]
}

// SetStyle replaces the resolved style, typically with a browser computed style.
func (d *Document) SetStyle(h Handle, s Style) {
	d.mu.Lock()
	d.styles[h] = s
	d.mu.Unlock()
}

// Box returns the page-relative layout box of h; zero when unknown.
func (d *Document) Box(h Handle) Rect {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.boxes[h]
}

func (d *Document) SetBox(h Handle, r Rect) {
	d.mu.Lock()
	d.boxes[h] = r
	d.mu.Unlock()
}

// resolveStatic derives styles and boxes from inline declarations and presentational
// attributes. Only color and visibility inherit; everything else is per element.
func (d *Document) resolveStatic() {
	for i := range d.nodes {
		h := Handle(i)
		decls := parseDeclarations(d.attr(h, "style"))
		parent := d.Parent(h)
		var inherited Style
		if parent != NoHandle {
			inherited = d.styles[parent]
		}

		s := Style{
			Color:           firstNonEmpty(decls["color"], d.attr(h, "color"), inherited.Color, defaultColor),
			BackgroundColor: firstNonEmpty(decls["background-color"], backgroundShorthand(decls["background"]), d.attr(h, "bgcolor"), defaultBackground),
			Opacity:         firstNonEmpty(decls["opacity"], "1"),
			Visibility:      firstNonEmpty(decls["visibility"], inherited.Visibility, "visible"),
			Display:         firstNonEmpty(decls["display"], defaultDisplay(d.Tag(h))),
			FontSize:        firstNonEmpty(decls["font-size"], inherited.FontSize, "16px"),
			Position:        firstNonEmpty(decls["position"], "static"),
			Width:           firstNonEmpty(decls["width"], pxAttr(d.attr(h, "width")), "auto"),
			Height:          firstNonEmpty(decls["height"], pxAttr(d.attr(h, "height")), "auto"),
		}
		if _, hidden := d.Attr(h, "hidden"); hidden && decls["display"] == "" {
			s.Display = "none"
		}
		if s.Visibility == "inherit" {
			s.Visibility = firstNonEmpty(inherited.Visibility, "visible")
		}
		if s.Color == "inherit" || s.Color == "currentcolor" {
			s.Color = firstNonEmpty(inherited.Color, defaultColor)
		}
		d.styles[h] = s

		w, wok := parsePx(s.Width)
		hgt, hok := parsePx(s.Height)
		if wok || hok {
			d.boxes[h] = Rect{Width: w, Height: hgt}
		}
	}
}

func (d *Document) attr(h Handle, name string) string {
	v, _ := d.Attr(h, name)
	return strings.TrimSpace(v)
}

// parseDeclarations reads a style attribute into lower-case property -> value.
func parseDeclarations(s string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		if name != "" && value != "" {
			out[name] = strings.TrimSpace(value)
		}
	}
	return out
}

// backgroundShorthand keeps the shorthand only when it is a bare color.
func backgroundShorthand(v string) string {
	if strings.Contains(v, "url(") || strings.Contains(v, "gradient(") {
		return ""
	}
	if strings.HasPrefix(v, "rgb") || !strings.Contains(v, " ") {
		return v
	}
	return ""
}

func defaultDisplay(tag string) string {
	switch tag {
	case "head", "script", "style", "template", "title", "meta", "link", "noscript":
		return "none"
	case "a", "span", "img", "button", "input", "label", "select", "textarea", "font", "big", "b", "i", "em", "strong", "code", "small":
		return "inline"
	default:
		return "block"
	}
}

func pxAttr(v string) string {
	if v == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v + "px"
	}
	return ""
}

// parsePx reads "12px" or a bare number.
func parsePx(v string) (float64, bool) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return strings.ToLower(v)
		}
	}
	return ""
}
