package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

const (
	textPreviewLimit = 50
	htmlLimit        = 300
)

// StyleSnapshot is the part of the resolved style sent to the provider.
type StyleSnapshot struct {
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
	FontSize        string `json:"fontSize"`
	Display         string `json:"display"`
	Position        string `json:"position"`
	Width           string `json:"width"`
	Height          string `json:"height"`
}

// Context describes the element the advice is for.
type Context struct {
	Tag         string            `json:"tagName"`
	ID          string            `json:"id"`
	Classes     string            `json:"classList"`
	TextPreview string            `json:"textPreview"`
	Styles      StyleSnapshot     `json:"styles"`
	Meta        *domain.AuditMeta `json:"meta,omitempty"`
	HTML        string            `json:"html"`
	Src         string            `json:"src,omitempty"`
}

// IsImage reports whether the element is an <img>.
func (c Context) IsImage() bool { return c.Tag == "img" }

func BuildContext(doc *dom.Document, h dom.Handle) Context {
	s := doc.StyleOf(h)
	id, _ := doc.Attr(h, "id")
	c := Context{
		Tag:         doc.Tag(h),
		ID:          id,
		Classes:     strings.Join(doc.Classes(h), " "),
		TextPreview: truncate(doc.Text(h), textPreviewLimit) + "...",
		Styles: StyleSnapshot{
			Color:           s.Color,
			BackgroundColor: s.BackgroundColor,
			FontSize:        s.FontSize,
			Display:         s.Display,
			Position:        s.Position,
			Width:           s.Width,
			Height:          s.Height,
		},
		HTML: doc.OuterHTML(h, htmlLimit),
	}
	if meta, ok := doc.MetaOf(h); ok {
		c.Meta = &meta
	}
	if c.IsImage() {
		c.Src, _ = doc.Attr(h, "src")
	}
	return c
}

// BuildPrompt renders the fixed three part prompt: a one line problem, a one line fix and a code block.
func BuildPrompt(c Context, issue string) string {
	styles, _ := json.Marshal(c.Styles)
	meta := []byte("{}")
	if c.Meta != nil {
		meta, _ = json.Marshal(c.Meta)
	}
	var b strings.Builder
	b.WriteString("You are a Senior Frontend & UX Engineer.\n\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Element: %s\n", strings.ToLower(c.Tag))
	fmt.Fprintf(&b, "- Issue: %q\n", issue)
	fmt.Fprintf(&b, "- Current Styles: %s\n", styles)
	fmt.Fprintf(&b, "- Metadata: %s\n", meta)
	fmt.Fprintf(&b, "- HTML: %s\n\n", c.HTML)
	b.WriteString("Task:\n")
	b.WriteString("1. Start with \"" + ErrorMarker + "\" and explain what is wrong in 1 sentence (max 15 words).\n")
	b.WriteString("2. New line. Start with \"" + FixMarker + "\" and explain what to do in 1 sentence (max 15 words).\n")
	b.WriteString("3. Provide the specific CSS/HTML code fix.\n\n")
	b.WriteString("Output format Example:\n")
	b.WriteString(ErrorMarker + " The text contrast is too low (2.5:1).\n")
	b.WriteString(FixMarker + " Darken the text color to #333333.\n")
	b.WriteString("```css\nselector { color: #333333; }\n```\n")
	return b.String()
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
