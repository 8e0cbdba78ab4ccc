// Package browser loads pages into dom.Documents, either through headless Chrome with
// computed styles and layout boxes, or as static markup over plain HTTP.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"heuristicheck/internal/dom"
)

const indexAttr = "data-hc-idx"

// captureScript tags every element with its index, records computed style and the
// page-relative box, serialises the tagged markup and removes the tags again.
const captureScript = `(() => {
  const els = Array.from(document.querySelectorAll('*'));
  const elements = els.map((el, i) => {
    el.setAttribute('` + indexAttr + `', String(i));
    const cs = getComputedStyle(el);
    const r = el.getBoundingClientRect();
    return {
      idx: i,
      style: {
        color: cs.color, backgroundColor: cs.backgroundColor, opacity: cs.opacity,
        visibility: cs.visibility, display: cs.display, fontSize: cs.fontSize,
        position: cs.position, width: cs.width, height: cs.height
      },
      box: {x: r.left + window.scrollX, y: r.top + window.scrollY, width: r.width, height: r.height}
    };
  });
  const html = document.documentElement.outerHTML;
  els.forEach(el => el.removeAttribute('` + indexAttr + `'));
  return {html, text: document.body ? document.body.innerText : '', elements};
})()`

type snapshot struct {
	HTML     string            `json:"html"`
	Text     string            `json:"text"`
	Elements []capturedElement `json:"elements"`
}

type capturedElement struct {
	Index int       `json:"idx"`
	Style dom.Style `json:"style"`
	Box   dom.Rect  `json:"box"`
}

type Options struct {
	Width   int64
	Height  int64
	Timeout time.Duration
	// ExecPath overrides the Chrome binary.
	ExecPath string
	Logger   *slog.Logger
}

// Capturer renders pages in a shared headless Chrome allocator.
type Capturer struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	opts     Options
}

func NewCapturer(ctx context.Context, opts Options) *Capturer {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.WindowSize(int(opts.Width), int(opts.Height)),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	return &Capturer{allocCtx: allocCtx, cancel: cancel, opts: opts}
}

// Capture navigates a fresh tab to url and snapshots the rendered page.
func (c *Capturer) Capture(ctx context.Context, url string) (*dom.Document, error) {
	tabCtx, cancelTab := chromedp.NewContext(c.allocCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, c.opts.Timeout)
	defer cancelTimeout()
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	started := time.Now()
	var snap snapshot
	err := chromedp.Run(tabCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(c.opts.Width, c.opts.Height, 1, false).Do(ctx)
		}),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(captureScript, &snap),
	)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", url, err)
	}
	doc, err := snap.document(url)
	if err != nil {
		return nil, err
	}
	c.opts.Logger.Debug("page captured", "url", url, "elements", doc.Len(), "took", time.Since(started))
	return doc, nil
}

func (c *Capturer) Close() { c.cancel() }

// document parses the captured markup and applies the computed styles and boxes by index.
func (s snapshot) document(url string) (*dom.Document, error) {
	doc, err := dom.ParseString(s.HTML, url)
	if err != nil {
		return nil, fmt.Errorf("parse captured page: %w", err)
	}
	byIndex := make(map[int]capturedElement, len(s.Elements))
	for _, el := range s.Elements {
		byIndex[el.Index] = el
	}
	for i := 0; i < doc.Len(); i++ {
		h := dom.Handle(i)
		n := doc.Node(h)
		for j, a := range n.Attr {
			if a.Key != indexAttr {
				continue
			}
			n.Attr = append(n.Attr[:j], n.Attr[j+1:]...)
			idx, err := strconv.Atoi(a.Val)
			if err != nil {
				break
			}
			if el, ok := byIndex[idx]; ok {
				doc.SetStyle(h, el.Style)
				doc.SetBox(h, el.Box)
			}
			break
		}
	}
	doc.SetBodyText(s.Text)
	return doc, nil
}
