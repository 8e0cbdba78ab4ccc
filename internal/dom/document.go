// Package dom holds the audited page: a parsed HTML tree plus typed side-tables
// (resolved style, layout box, marks, audit metadata) keyed by a stable element Handle.
//
// A Document is built either from static markup (Parse), where styles come from inline
// declarations and legacy presentational attributes, or from a live browser capture that
// supplies computed styles and bounding boxes through SetStyle and SetBox.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"heuristicheck/internal/domain"
)

// Handle identifies an element for the lifetime of its Document. Handles follow document order.
type Handle int

// NoHandle is returned when a node is not an element of the document.
const NoHandle Handle = -1

// Rect is a layout box in CSS pixels. Document boxes are page-relative.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Area() float64 { return r.Width * r.Height }

// Mark is the annotation left on an element that failed a rule.
type Mark struct {
	Label       string
	Severity    domain.Severity
	Highlighted bool
}

type Document struct {
	URL  string
	Root *html.Node

	nodes   []*html.Node
	handles map[*html.Node]Handle

	mu       sync.RWMutex
	styles   map[Handle]Style
	boxes    map[Handle]Rect
	marks    map[Handle]Mark
	meta     map[Handle]domain.AuditMeta
	bodyText *string
}

// Parse reads an HTML document and resolves static styles and boxes.
func Parse(r io.Reader, pageURL string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return New(root, pageURL), nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup, pageURL string) (*Document, error) {
	return Parse(strings.NewReader(markup), pageURL)
}

// New indexes an already parsed tree.
func New(root *html.Node, pageURL string) *Document {
	d := &Document{
		URL:     pageURL,
		Root:    root,
		handles: make(map[*html.Node]Handle),
		styles:  make(map[Handle]Style),
		boxes:   make(map[Handle]Rect),
		marks:   make(map[Handle]Mark),
		meta:    make(map[Handle]domain.AuditMeta),
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			h := Handle(len(d.nodes))
			d.nodes = append(d.nodes, n)
			d.handles[n] = h
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	d.resolveStatic()
	return d
}

// Len returns the number of elements.
func (d *Document) Len() int { return len(d.nodes) }

// Node returns the element for h, or nil.
func (d *Document) Node(h Handle) *html.Node {
	if h < 0 || int(h) >= len(d.nodes) {
		return nil
	}
	return d.nodes[h]
}

// HandleOf returns the handle of n, or NoHandle.
func (d *Document) HandleOf(n *html.Node) Handle {
	if h, ok := d.handles[n]; ok {
		return h
	}
	return NoHandle
}

// Parent returns the closest ancestor element.
func (d *Document) Parent(h Handle) Handle {
	n := d.Node(h)
	if n == nil {
		return NoHandle
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return d.HandleOf(p)
		}
	}
	return NoHandle
}

// Query evaluates an XPath expression and returns matching elements in document order.
func (d *Document) Query(expr string) ([]Handle, error) {
	nodes, err := htmlquery.QueryAll(d.Root, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	out := make([]Handle, 0, len(nodes))
	seen := make(map[Handle]bool, len(nodes))
	for _, n := range nodes {
		h := d.HandleOf(n)
		if h == NoHandle || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// QueryWithin is Query scoped to the subtree of h; the element itself is excluded.
func (d *Document) QueryWithin(h Handle, expr string) ([]Handle, error) {
	n := d.Node(h)
	if n == nil {
		return nil, nil
	}
	nodes, err := htmlquery.QueryAll(n, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	var out []Handle
	for _, c := range nodes {
		if ch := d.HandleOf(c); ch != NoHandle && ch != h {
			out = append(out, ch)
		}
	}
	return out, nil
}

// Tag returns the lower-case tag name.
func (d *Document) Tag(h Handle) string {
	if n := d.Node(h); n != nil {
		return strings.ToLower(n.Data)
	}
	return ""
}

// Attr returns the attribute value and whether it is present.
func (d *Document) Attr(h Handle, name string) (string, bool) {
	n := d.Node(h)
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the class list.
func (d *Document) Classes(h Handle) []string {
	v, _ := d.Attr(h, "class")
	return strings.Fields(v)
}

// Text returns the rendered text of the subtree with whitespace collapsed.
func (d *Document) Text(h Handle) string {
	n := d.Node(h)
	if n == nil {
		return ""
	}
	return collapseText(n)
}

// BodyText returns the text of <body>. A captured innerText takes precedence.
func (d *Document) BodyText() string {
	d.mu.RLock()
	captured := d.bodyText
	d.mu.RUnlock()
	if captured != nil {
		return *captured
	}
	body := htmlquery.FindOne(d.Root, "//body")
	if body == nil {
		return ""
	}
	return collapseText(body)
}

// SetBodyText records the body text reported by a renderer.
func (d *Document) SetBodyText(text string) {
	d.mu.Lock()
	d.bodyText = &text
	d.mu.Unlock()
}

// OuterHTML renders the element markup, truncated to limit bytes when limit > 0.
func (d *Document) OuterHTML(h Handle, limit int) string {
	n := d.Node(h)
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	s := buf.String()
	if limit > 0 && len(s) > limit {
		s = s[:limit]
	}
	return s
}

// Descriptor is a short selector-like label: <tag#id.firstClass>.
func (d *Document) Descriptor(h Handle) string {
	tag := d.Tag(h)
	if tag == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	if id, ok := d.Attr(h, "id"); ok && id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	if cls := d.Classes(h); len(cls) > 0 {
		b.WriteString(".")
		b.WriteString(cls[0])
	}
	b.WriteString(">")
	return b.String()
}

var skipText = map[string]bool{"script": true, "style": true, "noscript": true, "template": true, "head": true}

func collapseText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		case html.ElementNode:
			if skipText[strings.ToLower(n.Data)] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
