package navigator

// KeyEvent is a key press as the page reports it. Editable is set when focus is inside a
// text input, in which case the navigator leaves the key alone.
type KeyEvent struct {
	Key      string `json:"key"`
	Editable bool   `json:"editable"`
}

// HandleKey applies the keyboard shortcuts and reports whether the key was consumed.
func (n *Navigator) HandleKey(ev KeyEvent) bool {
	if ev.Editable {
		return false
	}
	switch ev.Key {
	case "ArrowRight", "ArrowDown":
		n.Next()
	case "ArrowLeft", "ArrowUp":
		n.Prev()
	case "f", "F":
		n.ToggleFocusMode()
	case "h", "H":
		n.ToggleHeatmapMode()
	case "d", "D", "Backspace", "Delete":
		n.DismissCurrent()
	case "Escape":
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.closed {
			return false
		}
		if n.focus {
			n.toggleFocus()
		}
		if n.heatmap {
			n.toggleHeatmap()
		}
	default:
		return false
	}
	return true
}
