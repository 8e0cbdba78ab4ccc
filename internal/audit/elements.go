package audit

import (
	"math"
	"strconv"
	"strings"

	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

// DefaultContrastThreshold is the ratio under which text counts as hard to read.
// It sits below the 4.5:1 body-text guideline.
const DefaultContrastThreshold = 3.0

// MinTargetSize is the smallest acceptable touch target edge in CSS pixels.
const MinTargetSize = 44.0

// ResolveEffectiveBackground walks from h outwards and returns the first painted background.
// Semi-transparent layers are not composited; the page defaults to white.
func ResolveEffectiveBackground(doc *dom.Document, h dom.Handle) RGB {
	for cur := h; cur != dom.NoHandle; cur = doc.Parent(cur) {
		bg := doc.StyleOf(cur).BackgroundColor
		if bg == "" || bg == "transparent" {
			continue
		}
		c, ok := ParseColor(bg)
		if !ok || c.Transparent() {
			continue
		}
		return c.RGB
	}
	return White
}

// IsVisible reports whether h is rendered at all.
func IsVisible(doc *dom.Document, h dom.Handle) bool {
	s := doc.StyleOf(h)
	if s.Display == "none" || s.Visibility == "hidden" {
		return false
	}
	if op, err := strconv.ParseFloat(strings.TrimSpace(s.Opacity), 64); err == nil && op == 0 {
		return false
	}
	return true
}

// IsLowContrast reports whether the text of h falls under threshold against its effective
// background. A positive verdict records the colors and ratio as audit metadata on h.
func IsLowContrast(doc *dom.Document, h dom.Handle, threshold float64) bool {
	if !IsVisible(doc, h) {
		return false
	}
	fg, ok := ParseColor(doc.StyleOf(h).Color)
	if !ok {
		return false
	}
	bg := ResolveEffectiveBackground(doc, h)
	ratio := ContrastRatio(fg.Luminance(), bg.Luminance())
	if ratio >= threshold {
		return false
	}
	doc.SetMeta(h, domain.AuditMeta{
		FgColor: fg.RGB.String(),
		BgColor: bg.String(),
		Ratio:   roundTo(ratio, 2),
	})
	return true
}

// IsBrokenLink reports an anchor without a usable destination.
func IsBrokenLink(doc *dom.Document, h dom.Handle) bool {
	href, ok := doc.Attr(h, "href")
	return !ok || href == "" || href == "#"
}

// IsUnlabeledInput reports an input without an accessible name.
func IsUnlabeledInput(doc *dom.Document, h dom.Handle) bool {
	for _, attr := range []string{"aria-label", "aria-labelledby", "name", "id"} {
		if v, ok := doc.Attr(h, attr); ok && strings.TrimSpace(v) != "" {
			return false
		}
	}
	for p := doc.Parent(h); p != dom.NoHandle; p = doc.Parent(p) {
		if doc.Tag(p) == "label" {
			return false
		}
	}
	return true
}

// IsUndersized reports a rendered control whose box is narrower or shorter than MinTargetSize.
func IsUndersized(doc *dom.Document, h dom.Handle) bool {
	r := doc.Box(h)
	return r.Width > 0 && r.Height > 0 && (r.Width < MinTargetSize || r.Height < MinTargetSize)
}

var deprecatedTags = map[string]bool{"font": true, "center": true, "big": true, "marquee": true}

// IsDeprecatedTag reports legacy presentational markup.
func IsDeprecatedTag(tag string) bool { return deprecatedTags[strings.ToLower(tag)] }

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
