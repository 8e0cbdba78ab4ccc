// Package navigator steps a user through the elements marked by an audit.
//
// A Navigator tracks the current element, the focus spotlight and the heatmap over a
// shrinking list of marked elements. It never touches the network itself: advice is
// fetched through an AdviceSource on its own goroutine and rendered only while the
// element it was requested for is still current.
package navigator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"heuristicheck/internal/advisor"
	"heuristicheck/internal/dom"
)

const (
	PulseDuration = 400 * time.Millisecond
	// EdgeMargin is the distance from a viewport edge at which tooltips flip.
	EdgeMargin = 100.0

	allClearText    = "All Clean!"
	defaultSeverity = "INFO"
	defaultLabel    = "General Issue"
)

// SpotlightRetries are the delays after which the spotlight is repositioned while the
// page settles from scrolling.
var SpotlightRetries = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// AdviceSource produces advice for a marked element.
type AdviceSource interface {
	Model() string
	RequestAdvice(ctx context.Context, doc *dom.Document, h dom.Handle, issue string) (advisor.Advice, error)
}

type Options struct {
	Theme     Theme
	Viewport  Viewport
	Scheduler Scheduler
	Advisor   AdviceSource
	Logger    *slog.Logger
}

type Navigator struct {
	doc    *dom.Document
	vp     Viewport
	sched  Scheduler
	source AdviceSource
	logger *slog.Logger

	mu         sync.Mutex
	elements   []dom.Handle
	current    int
	focus      bool
	heatmap    bool
	theme      Theme
	closed     bool
	allClear   bool
	pulse      dom.Handle
	pulseSeq   int
	spotlight  Spotlight
	indicators []Indicator
	advice     AdvicePanel
	adviceSeq  uint64
	cancels    []func()
	timers     map[int]func() bool
	timerID    int
}

// New builds a navigator over elements, in the given order, and subscribes to the
// viewport. Any previous navigator over the same document must be closed and the
// document's overlays cleared before the audit that produced elements ran.
func New(doc *dom.Document, elements []dom.Handle, opts Options) *Navigator {
	n := &Navigator{
		doc:      doc,
		vp:       opts.Viewport,
		sched:    opts.Scheduler,
		source:   opts.Advisor,
		logger:   opts.Logger,
		elements: append([]dom.Handle(nil), elements...),
		current:  -1,
		theme:    opts.Theme,
		pulse:    dom.NoHandle,
		advice:   AdvicePanel{Status: AdviceIdle},
		timers:   make(map[int]func() bool),
	}
	if n.vp == nil {
		n.vp = NewStaticViewport(doc, 1280, 800)
	}
	if n.sched == nil {
		n.sched = timerScheduler{}
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	if n.theme == "" {
		n.theme = ThemeDark
	}
	n.cancels = append(n.cancels,
		n.vp.OnScroll(n.reposition),
		n.vp.OnResize(n.reposition),
		n.vp.OnKey(func(ev KeyEvent) { n.HandleKey(ev) }),
	)
	return n
}

// Viewport returns the viewport the navigator draws into.
func (n *Navigator) Viewport() Viewport { return n.vp }

func (n *Navigator) Next() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || len(n.elements) == 0 {
		return
	}
	n.current = (n.current + 1) % len(n.elements)
	n.scrollToCurrent()
}

func (n *Navigator) Prev() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || len(n.elements) == 0 {
		return
	}
	n.current = (n.current - 1 + len(n.elements)) % len(n.elements)
	n.scrollToCurrent()
}

// DismissCurrent unhighlights the current element and stops tracking it.
// It is a no-op while nothing is selected.
func (n *Navigator) DismissCurrent() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || n.current == -1 || len(n.elements) == 0 {
		return
	}
	n.doc.Unhighlight(n.elements[n.current])
	n.elements = append(n.elements[:n.current], n.elements[n.current+1:]...)
	n.closeAdvice()

	if len(n.elements) == 0 {
		n.current = -1
		n.allClear = true
		n.spotlight.Visible = false
		n.pulse = dom.NoHandle
		if n.heatmap {
			n.renderIndicators()
		}
		return
	}
	if n.current >= len(n.elements) {
		n.current = 0
	}
	if n.heatmap {
		n.renderIndicators()
	}
	n.scrollToCurrent()
}

func (n *Navigator) ToggleFocusMode() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.toggleFocus()
}

func (n *Navigator) toggleFocus() {
	n.focus = !n.focus
	if !n.focus {
		n.spotlight.Visible = false
		return
	}
	n.spotlight.Visible = true
	if n.current >= 0 {
		n.updateSpotlight()
	}
	if n.heatmap {
		n.toggleHeatmap()
	}
}

func (n *Navigator) ToggleHeatmapMode() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.toggleHeatmap()
}

func (n *Navigator) toggleHeatmap() {
	n.heatmap = !n.heatmap
	if !n.heatmap {
		n.indicators = nil
		return
	}
	n.renderIndicators()
	if n.focus {
		n.toggleFocus()
	}
}

// SelectIndicator makes the element behind heatmap indicator i current and leaves heatmap mode.
// It reports false when heatmap mode is off or i is out of range.
func (n *Navigator) SelectIndicator(i int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || !n.heatmap || i < 0 || i >= len(n.elements) {
		return false
	}
	n.current = i
	n.scrollToCurrent()
	n.toggleHeatmap()
	return true
}

// SetTheme switches presentation only.
func (n *Navigator) SetTheme(t Theme) {
	n.mu.Lock()
	n.theme = t
	n.mu.Unlock()
}

// CopySelector returns the descriptor of the current element, or "" when nothing is selected.
func (n *Navigator) CopySelector() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current < 0 {
		return ""
	}
	return n.doc.Descriptor(n.elements[n.current])
}

// Elements returns the tracked elements in order.
func (n *Navigator) Elements() []dom.Handle {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]dom.Handle(nil), n.elements...)
}

// Close unsubscribes from the viewport, stops pending timers and drops transient overlay
// state. Marks on the document are left for the overlay clearing step. Safe to call twice.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for _, cancel := range n.cancels {
		cancel()
	}
	n.cancels = nil
	for id, stop := range n.timers {
		stop()
		delete(n.timers, id)
	}
	n.focus, n.heatmap = false, false
	n.spotlight = Spotlight{}
	n.indicators = nil
	n.pulse = dom.NoHandle
	n.closeAdvice()
}

// Overlay returns a snapshot of the render model.
func (n *Navigator) Overlay() Overlay {
	n.mu.Lock()
	defer n.mu.Unlock()
	o := Overlay{
		Theme:        n.theme,
		State:        StateBrowsing,
		Total:        len(n.elements),
		CurrentIndex: n.current,
		Counter:      n.current + 1,
		FocusMode:    n.focus,
		HeatmapMode:  n.heatmap,
		AllClear:     n.allClear,
		Pulse:        n.pulse,
		Spotlight:    n.spotlight,
		Indicators:   append([]Indicator{}, n.indicators...),
		Advice:       n.advice,
		Closed:       n.closed,
	}
	if len(n.elements) == 0 {
		o.State = StateIdle
	}
	if n.allClear {
		o.AllClearText = allClearText
	}
	if n.current >= 0 {
		s := n.summary(n.elements[n.current])
		o.Summary = &s
	}
	if n.advice.Advice != nil {
		adv := *n.advice.Advice
		o.Advice.Advice = &adv
	}
	return o
}

func (n *Navigator) summary(h dom.Handle) Summary {
	s := Summary{Severity: defaultSeverity, Label: defaultLabel, Descriptor: n.doc.Descriptor(h)}
	if m, ok := n.doc.MarkOf(h); ok {
		if m.Severity != "" {
			s.Severity = string(m.Severity)
		}
		if m.Label != "" {
			s.Label = m.Label
		}
	}
	return s
}

// scrollToCurrent brings the current element into view, pulses it and refreshes the panel.
func (n *Navigator) scrollToCurrent() {
	if n.current < 0 || n.current >= len(n.elements) {
		return
	}
	h := n.elements[n.current]
	n.allClear = false
	n.vp.ScrollIntoView(h)

	n.pulse = h
	n.pulseSeq++
	seq := n.pulseSeq
	n.after(PulseDuration, func() {
		if n.pulseSeq == seq {
			n.pulse = dom.NoHandle
		}
	})

	n.closeAdvice()
	if n.focus {
		n.updateSpotlight()
		for _, d := range SpotlightRetries {
			n.after(d, n.updateSpotlight)
		}
	}
}

func (n *Navigator) updateSpotlight() {
	if !n.focus || n.current == -1 || n.current >= len(n.elements) {
		return
	}
	r := n.vp.Rect(n.elements[n.current])
	n.spotlight.Rect = dom.Rect{
		X:      r.X - SpotlightPadding,
		Y:      r.Y - SpotlightPadding,
		Width:  r.Width + 2*SpotlightPadding,
		Height: r.Height + 2*SpotlightPadding,
	}
}

// reposition follows scroll and resize.
func (n *Navigator) reposition() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.updateSpotlight()
	if n.heatmap {
		n.renderIndicators()
	}
}

// after schedules fn under the navigator lock unless the navigator is closed first.
func (n *Navigator) after(d time.Duration, fn func()) {
	id := n.timerID
	n.timerID++
	n.timers[id] = n.sched.AfterFunc(d, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, pending := n.timers[id]; !pending || n.closed {
			return
		}
		delete(n.timers, id)
		fn()
	})
}
