package navigator

import "fmt"

// renderIndicators places one indicator at the viewport center of every tracked element.
func (n *Navigator) renderIndicators() {
	vw, _ := n.vp.Size()
	n.indicators = make([]Indicator, 0, len(n.elements))
	for i, h := range n.elements {
		r := n.vp.Rect(h)
		x, y := r.X+r.Width/2, r.Y+r.Height/2
		m, _ := n.doc.MarkOf(h)

		ind := Indicator{
			Index:    i,
			X:        x,
			Y:        y,
			Tier:     tierOf(m.Severity),
			Tooltip:  fmt.Sprintf("%s: %s", m.Severity, m.Label),
			Vertical: "above",
			Align:    "center",
		}
		if y < EdgeMargin {
			ind.Vertical = "below"
		}
		switch {
		case x < EdgeMargin:
			ind.Align = "left"
		case x > vw-EdgeMargin:
			ind.Align = "right"
		}
		n.indicators = append(n.indicators, ind)
	}
}
