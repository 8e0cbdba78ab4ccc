package navigator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heuristicheck/internal/advisor"
	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

// manualClock is a Scheduler driven by Advance.
type manualClock struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*task
}

type task struct {
	at   time.Duration
	fn   func()
	done bool
}

func (c *manualClock) AfterFunc(d time.Duration, fn func()) func() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &task{at: c.now + d, fn: fn}
	c.tasks = append(c.tasks, t)
	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if t.done {
			return false
		}
		t.done = true
		return true
	}
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*task
	for _, t := range c.tasks {
		if !t.done && t.at <= c.now {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

type fixture struct {
	doc   *dom.Document
	vp    *StaticViewport
	clock *manualClock
	a     dom.Handle
	b     dom.Handle
	c     dom.Handle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	doc, err := dom.ParseString(`<html><body>
        <a id="a" class="card big" href="#">A</a>
        <input id="b">
        <img id="c" src="x.png">
    </body></html>`, "https://example.com/")
	require.NoError(t, err)

	f := &fixture{doc: doc, clock: &manualClock{}}
	find := func(id string) dom.Handle {
		hs, err := doc.Query("//*[@id='" + id + "']")
		require.NoError(t, err)
		require.Len(t, hs, 1)
		return hs[0]
	}
	f.a, f.b, f.c = find("a"), find("b"), find("c")

	doc.SetBox(f.a, dom.Rect{X: 10, Y: 50, Width: 100, Height: 20})
	doc.SetBox(f.b, dom.Rect{X: 600, Y: 900, Width: 100, Height: 40})
	doc.SetBox(f.c, dom.Rect{X: 1250, Y: 2000, Width: 20, Height: 20})
	doc.Mark(f.a, domain.SeverityHigh, "Broken Link")
	doc.Mark(f.b, domain.SeverityHigh, "Mystery Input")
	doc.Mark(f.c, domain.SeverityMedium, "Accessibility Risk")

	f.vp = NewStaticViewport(doc, 1280, 800)
	return f
}

func (f *fixture) navigator(src AdviceSource) *Navigator {
	return New(f.doc, []dom.Handle{f.a, f.b, f.c}, Options{
		Viewport:  f.vp,
		Scheduler: f.clock,
		Advisor:   src,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestNewStartsUnselected(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)

	o := n.Overlay()
	assert.Equal(t, StateBrowsing, o.State)
	assert.Equal(t, -1, o.CurrentIndex)
	assert.Equal(t, 3, o.Total)
	assert.Nil(t, o.Summary)
	assert.Equal(t, ThemeDark, o.Theme)
	assert.Equal(t, 3, f.vp.Listeners())
}

func TestNextPrevAreCyclic(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)

	n.Next()
	require.Equal(t, 0, n.Overlay().CurrentIndex)
	for i := 0; i < 3; i++ {
		n.Next()
	}
	assert.Equal(t, 0, n.Overlay().CurrentIndex)

	n.Next()
	for i := 0; i < 3; i++ {
		n.Prev()
	}
	assert.Equal(t, 1, n.Overlay().CurrentIndex)

	other := f.navigator(nil)
	other.Prev()
	assert.Equal(t, 1, other.Overlay().CurrentIndex, "prev from unset wraps like (-1-1+len) mod len")
}

func TestNavigationRefreshesSummaryAndPulses(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)

	n.Next()
	o := n.Overlay()
	require.NotNil(t, o.Summary)
	assert.Equal(t, Summary{Severity: "High", Label: "Broken Link", Descriptor: "<a#a.card>"}, *o.Summary)
	assert.Equal(t, 1, o.Counter)
	assert.Equal(t, f.a, o.Pulse)

	f.clock.Advance(PulseDuration)
	assert.Equal(t, dom.NoHandle, n.Overlay().Pulse)

	n.Next()
	_, y := f.vp.Offset()
	assert.Equal(t, 920.0-400.0, y, "element scrolled to the viewport center")
	assert.Equal(t, "<input#b>", n.CopySelector())
}

func TestEmptyNavigatorIsIdle(t *testing.T) {
	f := newFixture(t)
	n := New(f.doc, nil, Options{Viewport: f.vp, Scheduler: f.clock})

	n.Next()
	n.Prev()
	n.DismissCurrent()
	assert.False(t, n.SelectIndicator(0))
	<-n.RequestAdvice(context.Background())

	o := n.Overlay()
	assert.Equal(t, StateIdle, o.State)
	assert.Equal(t, -1, o.CurrentIndex)
	assert.False(t, o.Advice.Open)
	assert.Equal(t, "", n.CopySelector())
}

func TestDismissClampsToFirst(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	for i := 0; i < 3; i++ {
		n.Next()
	}
	require.Equal(t, 2, n.Overlay().CurrentIndex)

	n.DismissCurrent()

	assert.Equal(t, []dom.Handle{f.a, f.b}, n.Elements())
	assert.Equal(t, 0, n.Overlay().CurrentIndex)
	assert.Equal(t, []dom.Handle{f.a, f.b}, f.doc.Marked(), "dismissed element is unhighlighted")
	m, ok := f.doc.MarkOf(f.c)
	require.True(t, ok)
	assert.Equal(t, "Accessibility Risk", m.Label)
}

func TestDismissKeepsIndexInBounds(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.Next()
	n.Next()

	n.DismissCurrent()
	assert.Equal(t, 1, n.Overlay().CurrentIndex)
	assert.Equal(t, []dom.Handle{f.a, f.c}, n.Elements())

	n.DismissCurrent()
	assert.Equal(t, 0, n.Overlay().CurrentIndex)
	assert.Len(t, n.Elements(), 1)
}

func TestDismissWithoutSelectionIsNoop(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.DismissCurrent()
	assert.Len(t, n.Elements(), 3)
	assert.Len(t, f.doc.Marked(), 3)
}

func TestDismissingLastElementGoesIdle(t *testing.T) {
	f := newFixture(t)
	n := New(f.doc, []dom.Handle{f.a}, Options{Viewport: f.vp, Scheduler: f.clock})
	n.Next()
	n.ToggleFocusMode()
	require.True(t, n.Overlay().Spotlight.Visible)

	n.DismissCurrent()

	o := n.Overlay()
	assert.Equal(t, StateIdle, o.State)
	assert.Equal(t, -1, o.CurrentIndex)
	assert.Equal(t, 0, o.Total)
	assert.True(t, o.AllClear)
	assert.Equal(t, "All Clean!", o.AllClearText)
	assert.False(t, o.Spotlight.Visible)
	assert.Nil(t, o.Summary)
}

func TestFocusAndHeatmapAreMutuallyExclusive(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.Next()

	n.ToggleFocusMode()
	o := n.Overlay()
	assert.True(t, o.FocusMode)
	assert.True(t, o.Spotlight.Visible)

	n.ToggleHeatmapMode()
	o = n.Overlay()
	assert.True(t, o.HeatmapMode)
	assert.False(t, o.FocusMode)
	assert.False(t, o.Spotlight.Visible)
	assert.Len(t, o.Indicators, 3)

	n.ToggleFocusMode()
	o = n.Overlay()
	assert.True(t, o.FocusMode)
	assert.False(t, o.HeatmapMode)
	assert.Empty(t, o.Indicators)

	n.ToggleFocusMode()
	n.ToggleFocusMode()
	assert.True(t, n.Overlay().FocusMode, "double toggle restores the flag")
}

func TestSpotlightTracksCurrentElement(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.ToggleFocusMode()
	assert.Equal(t, dom.Rect{}, n.Overlay().Spotlight.Rect, "nothing selected yet")

	n.Next()
	assert.Equal(t, dom.Rect{X: 6, Y: 46, Width: 108, Height: 28}, n.Overlay().Spotlight.Rect)
	assert.Equal(t, 3, f.clock.Pending(), "pulse revert and two spotlight retries")

	f.vp.Scroll(0, 30)
	assert.Equal(t, 16.0, n.Overlay().Spotlight.Rect.Y)

	f.clock.Advance(PulseDuration)
	assert.Equal(t, 16.0, n.Overlay().Spotlight.Rect.Y)
	assert.Equal(t, 0, f.clock.Pending())
}

func TestHeatmapIndicators(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.ToggleHeatmapMode()

	inds := n.Overlay().Indicators
	require.Len(t, inds, 3)

	assert.Equal(t, Indicator{Index: 0, X: 60, Y: 60, Tier: TierHigh, Tooltip: "High: Broken Link", Vertical: "below", Align: "left"}, inds[0])
	assert.Equal(t, Indicator{Index: 1, X: 650, Y: 920, Tier: TierHigh, Tooltip: "High: Mystery Input", Vertical: "above", Align: "center"}, inds[1])
	assert.Equal(t, Indicator{Index: 2, X: 1260, Y: 2010, Tier: TierMedium, Tooltip: "Medium: Accessibility Risk", Vertical: "above", Align: "right"}, inds[2])

	f.vp.Scroll(0, 500)
	assert.Equal(t, 420.0, n.Overlay().Indicators[1].Y, "indicators follow scrolling")

	f.vp.Resize(720, 600)
	assert.Equal(t, "right", n.Overlay().Indicators[1].Align, "650 is within 100px of the new right edge")
}

func TestSelectIndicator(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	assert.False(t, n.SelectIndicator(1), "heatmap is off")

	n.ToggleHeatmapMode()
	assert.False(t, n.SelectIndicator(7))
	require.True(t, n.SelectIndicator(1))

	o := n.Overlay()
	assert.Equal(t, 1, o.CurrentIndex)
	assert.False(t, o.HeatmapMode)
	assert.Empty(t, o.Indicators)
	_, y := f.vp.Offset()
	assert.Equal(t, 520.0, y)
}

func TestHandleKey(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)

	assert.True(t, n.HandleKey(KeyEvent{Key: "ArrowRight"}))
	assert.True(t, n.HandleKey(KeyEvent{Key: "ArrowDown"}))
	assert.Equal(t, 1, n.Overlay().CurrentIndex)
	assert.True(t, n.HandleKey(KeyEvent{Key: "ArrowUp"}))
	assert.True(t, n.HandleKey(KeyEvent{Key: "ArrowLeft"}))
	assert.Equal(t, 2, n.Overlay().CurrentIndex)

	assert.False(t, n.HandleKey(KeyEvent{Key: "ArrowRight", Editable: true}))
	assert.Equal(t, 2, n.Overlay().CurrentIndex, "keys typed into inputs are ignored")

	n.HandleKey(KeyEvent{Key: "F"})
	assert.True(t, n.Overlay().FocusMode)
	n.HandleKey(KeyEvent{Key: "h"})
	assert.True(t, n.Overlay().HeatmapMode)
	n.HandleKey(KeyEvent{Key: "Escape"})
	o := n.Overlay()
	assert.False(t, o.HeatmapMode)
	assert.False(t, o.FocusMode)
	assert.True(t, n.HandleKey(KeyEvent{Key: "Escape"}), "escape with no mode is a no-op")

	n.HandleKey(KeyEvent{Key: "Delete"})
	n.HandleKey(KeyEvent{Key: "d"})
	assert.Len(t, n.Elements(), 1)
	n.HandleKey(KeyEvent{Key: "Backspace"})
	assert.Equal(t, StateIdle, n.Overlay().State)

	assert.False(t, n.HandleKey(KeyEvent{Key: "x"}))
}

func TestKeysArriveThroughViewport(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)

	f.vp.DispatchKey(KeyEvent{Key: "ArrowRight"})
	assert.Equal(t, 0, n.Overlay().CurrentIndex)
}

func TestCloseIsIdempotent(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.ToggleFocusMode()
	n.Next()
	require.Positive(t, f.clock.Pending())

	n.Close()
	n.Close()

	assert.Equal(t, 0, f.vp.Listeners())
	assert.Equal(t, 0, f.clock.Pending())
	o := n.Overlay()
	assert.True(t, o.Closed)
	assert.False(t, o.FocusMode)
	assert.False(t, o.Spotlight.Visible)

	f.vp.DispatchKey(KeyEvent{Key: "ArrowRight"})
	n.Next()
	assert.Equal(t, 0, n.Overlay().CurrentIndex, "closed navigators ignore input")

	fresh := New(f.doc, nil, Options{Viewport: f.vp, Scheduler: f.clock})
	fresh.Close()
	fresh.Close()
}

func TestParseTheme(t *testing.T) {
	for in, want := range map[string]Theme{"": ThemeDark, "dark": ThemeDark, "LIGHT": ThemeLight} {
		got, err := ParseTheme(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseTheme("sepia")
	assert.Error(t, err)

	f := newFixture(t)
	n := f.navigator(nil)
	n.Next()
	n.SetTheme(ThemeLight)
	o := n.Overlay()
	assert.Equal(t, ThemeLight, o.Theme)
	assert.Equal(t, 0, o.CurrentIndex)
}

// gatedSource blocks every request until release is closed.
type gatedSource struct {
	release chan struct{}
	advice  advisor.Advice
	err     error
}

func (g *gatedSource) Model() string { return "fake-model" }

func (g *gatedSource) RequestAdvice(ctx context.Context, _ *dom.Document, _ dom.Handle, _ string) (advisor.Advice, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return advisor.Advice{}, ctx.Err()
	}
	return g.advice, g.err
}

func newGate(adv advisor.Advice, err error) *gatedSource {
	return &gatedSource{release: make(chan struct{}), advice: adv, err: err}
}

func TestRequestAdviceRendersResult(t *testing.T) {
	f := newFixture(t)
	src := newGate(advisor.ParseAdvice("❌ **Error:** x\n✅ **Fix:** y"), nil)
	n := f.navigator(src)
	n.Next()

	done := n.RequestAdvice(context.Background())
	o := n.Overlay()
	assert.True(t, o.Advice.Open)
	assert.Equal(t, AdviceLoading, o.Advice.Status)
	assert.Equal(t, "Analyzing with fake-model...", o.Advice.Text)

	n.ToggleFocusMode()
	assert.True(t, n.Overlay().FocusMode, "navigator stays responsive while advice is pending")

	close(src.release)
	<-done
	o = n.Overlay()
	assert.Equal(t, AdviceReady, o.Advice.Status)
	require.NotNil(t, o.Advice.Advice)
	assert.Equal(t, "y", o.Advice.Advice.Fix)
}

func TestRequestAdviceErrorIsShownVerbatim(t *testing.T) {
	f := newFixture(t)
	src := newGate(advisor.Advice{}, errors.New("Incorrect API key provided"))
	n := f.navigator(src)
	n.Next()
	n.Next()

	done := n.RequestAdvice(context.Background())
	close(src.release)
	<-done

	o := n.Overlay()
	assert.Equal(t, AdviceError, o.Advice.Status)
	assert.Equal(t, "Incorrect API key provided", o.Advice.Text)
	assert.Equal(t, 1, o.CurrentIndex, "errors leave navigation untouched")
	assert.Len(t, n.Elements(), 3)
}

func TestStaleAdviceIsDiscarded(t *testing.T) {
	tests := []struct {
		name   string
		change func(n *Navigator)
	}{
		{"navigated away", func(n *Navigator) { n.Next() }},
		{"element dismissed", func(n *Navigator) { n.DismissCurrent() }},
		{"navigator closed", func(n *Navigator) { n.Close() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			src := newGate(advisor.Advice{Raw: "late"}, nil)
			n := f.navigator(src)
			n.Next()

			done := n.RequestAdvice(context.Background())
			tt.change(n)
			close(src.release)
			<-done

			o := n.Overlay()
			assert.False(t, o.Advice.Open)
			assert.Equal(t, AdviceIdle, o.Advice.Status)
			assert.Nil(t, o.Advice.Advice)
		})
	}
}

func TestRequestAdviceWithoutSource(t *testing.T) {
	f := newFixture(t)
	n := f.navigator(nil)
	n.Next()
	<-n.RequestAdvice(context.Background())

	o := n.Overlay()
	assert.True(t, o.Advice.Open)
	assert.Equal(t, AdviceError, o.Advice.Status)
	assert.Equal(t, advisor.ErrMissingKey.Error(), o.Advice.Text)
}
