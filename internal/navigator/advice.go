package navigator

import (
	"context"
	"fmt"

	"heuristicheck/internal/advisor"
	"heuristicheck/internal/dom"
)

// RequestAdvice opens the advice panel and fetches advice for the current element in the
// background. The returned channel closes once the fetch has settled. A result is dropped
// when the element was dismissed, another element became current, a newer request started
// or the navigator was closed in the meantime. Errors are shown verbatim.
func (n *Navigator) RequestAdvice(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	n.mu.Lock()
	if n.closed || n.current < 0 {
		n.mu.Unlock()
		close(done)
		return done
	}
	h := n.elements[n.current]
	n.adviceSeq++
	seq := n.adviceSeq
	if n.source == nil {
		n.advice = AdvicePanel{Open: true, Status: AdviceError, Text: advisor.ErrMissingKey.Error()}
		n.mu.Unlock()
		close(done)
		return done
	}
	n.advice = AdvicePanel{Open: true, Status: AdviceLoading, Text: fmt.Sprintf("Analyzing with %s...", n.source.Model())}
	issue := n.summary(h).Label
	n.mu.Unlock()

	go func() {
		defer close(done)
		adv, err := n.source.RequestAdvice(ctx, n.doc, h, issue)

		n.mu.Lock()
		defer n.mu.Unlock()
		if n.closed || seq != n.adviceSeq || !n.isCurrent(h) {
			n.logger.Debug("discarding stale advice", "element", n.doc.Descriptor(h))
			return
		}
		if err != nil {
			n.advice = AdvicePanel{Open: true, Status: AdviceError, Text: err.Error()}
			return
		}
		n.advice = AdvicePanel{Open: true, Status: AdviceReady, Text: adv.Raw, Advice: &adv}
	}()
	return done
}

func (n *Navigator) isCurrent(h dom.Handle) bool {
	return n.current >= 0 && n.current < len(n.elements) && n.elements[n.current] == h
}

// closeAdvice hides the panel and invalidates any fetch still in flight.
func (n *Navigator) closeAdvice() {
	n.adviceSeq++
	n.advice = AdvicePanel{Status: AdviceIdle}
}
