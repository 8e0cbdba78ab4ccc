package navigator

import (
	"maps"
	"math"
	"slices"
	"sync"
	"time"

	"heuristicheck/internal/dom"
)

// Viewport is the window the navigator draws into. Rects are viewport-relative.
type Viewport interface {
	Size() (width, height float64)
	Rect(h dom.Handle) dom.Rect
	ScrollIntoView(h dom.Handle)
	OnScroll(fn func()) (cancel func())
	OnResize(fn func()) (cancel func())
	OnKey(fn func(KeyEvent)) (cancel func())
}

// Scheduler runs fn once after d. The returned stop reports whether fn was prevented from running.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// StaticViewport is a Viewport over the page-relative boxes of a Document.
// Listeners fire only from Scroll, Resize and DispatchKey, never from ScrollIntoView.
type StaticViewport struct {
	doc *dom.Document

	mu       sync.Mutex
	width    float64
	height   float64
	scrollX  float64
	scrollY  float64
	nextID   int
	onScroll map[int]func()
	onResize map[int]func()
	onKey    map[int]func(KeyEvent)
}

func NewStaticViewport(doc *dom.Document, width, height float64) *StaticViewport {
	return &StaticViewport{
		doc:      doc,
		width:    width,
		height:   height,
		onScroll: make(map[int]func()),
		onResize: make(map[int]func()),
		onKey:    make(map[int]func(KeyEvent)),
	}
}

func (v *StaticViewport) Size() (float64, float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Offset returns the current scroll position.
func (v *StaticViewport) Offset() (x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollX, v.scrollY
}

func (v *StaticViewport) Rect(h dom.Handle) dom.Rect {
	box := v.doc.Box(h)
	v.mu.Lock()
	defer v.mu.Unlock()
	box.X -= v.scrollX
	box.Y -= v.scrollY
	return box
}

// ScrollIntoView centers h vertically, like scrollIntoView({block: "center"}).
func (v *StaticViewport) ScrollIntoView(h dom.Handle) {
	box := v.doc.Box(h)
	v.mu.Lock()
	v.scrollY = math.Max(0, box.Y+box.Height/2-v.height/2)
	v.mu.Unlock()
}

// Scroll moves the viewport and notifies scroll listeners.
func (v *StaticViewport) Scroll(x, y float64) {
	v.mu.Lock()
	v.scrollX, v.scrollY = math.Max(0, x), math.Max(0, y)
	fns := collect(v.onScroll)
	v.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Resize changes the viewport size and notifies resize listeners.
func (v *StaticViewport) Resize(width, height float64) {
	v.mu.Lock()
	v.width, v.height = width, height
	fns := collect(v.onResize)
	v.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// DispatchKey delivers a key press to the registered keyboard listeners.
func (v *StaticViewport) DispatchKey(ev KeyEvent) {
	v.mu.Lock()
	fns := make([]func(KeyEvent), 0, len(v.onKey))
	for _, id := range sortedIDs(v.onKey) {
		fns = append(fns, v.onKey[id])
	}
	v.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Listeners returns the number of registered listeners.
func (v *StaticViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.onScroll) + len(v.onResize) + len(v.onKey)
}

func (v *StaticViewport) OnScroll(fn func()) func() { return subscribe(v, v.onScroll, fn) }

func (v *StaticViewport) OnResize(fn func()) func() { return subscribe(v, v.onResize, fn) }

func (v *StaticViewport) OnKey(fn func(KeyEvent)) func() { return subscribe(v, v.onKey, fn) }

func subscribe[F any](v *StaticViewport, set map[int]F, fn F) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	set[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(set, id)
			v.mu.Unlock()
		})
	}
}

func collect(set map[int]func()) []func() {
	out := make([]func(), 0, len(set))
	for _, id := range sortedIDs(set) {
		out = append(out, set[id])
	}
	return out
}

func sortedIDs[F any](set map[int]F) []int {
	return slices.Sorted(maps.Keys(set))
}
