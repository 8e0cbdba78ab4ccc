// Package advisor asks an AI provider how to fix a marked element.
package advisor

import (
	"context"
	"log/slog"

	"heuristicheck/internal/dom"
)

type Advisor struct {
	provider AdvisoryProvider
	images   ImageFetcher
	cache    Cache
	logger   *slog.Logger
}

type Option func(*Advisor)

func WithImageFetcher(f ImageFetcher) Option { return func(a *Advisor) { a.images = f } }

func WithCache(c Cache) Option { return func(a *Advisor) { a.cache = c } }

func WithLogger(l *slog.Logger) Option {
	return func(a *Advisor) {
		if l != nil {
			a.logger = l
		}
	}
}

func New(provider AdvisoryProvider, opts ...Option) *Advisor {
	a := &Advisor{provider: provider, images: HTTPImageFetcher{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model names the model text prompts go to.
func (a *Advisor) Model() string {
	if a.provider == nil {
		return ""
	}
	return a.provider.Model()
}

// RequestAdvice builds the element context and prompt, attaches the image for <img>
// elements when the provider accepts one, and parses the reply.
func (a *Advisor) RequestAdvice(ctx context.Context, doc *dom.Document, h dom.Handle, issue string) (Advice, error) {
	if a.provider == nil {
		return Advice{}, ErrMissingKey
	}
	c := BuildContext(doc, h)
	p := Prompt{Text: BuildPrompt(c, issue), Image: c.IsImage()}
	if p.Image && c.Src != "" && a.provider.SupportsImages() && a.images != nil {
		data, err := a.images.Fetch(ctx, doc.URL, c.Src)
		if err != nil {
			a.logger.Warn("image fetch failed, continuing without image", "src", c.Src, "error", err)
		} else {
			p.ImageDataURL = data
		}
	}

	key := cacheKey(a.provider.Name(), a.provider.Model(), p)
	if a.cache != nil {
		if raw, ok, err := a.cache.Get(ctx, key); err != nil {
			a.logger.Warn("advice cache read failed", "error", err)
		} else if ok {
			return ParseAdvice(raw), nil
		}
	}

	raw, err := a.provider.Suggest(ctx, p)
	if err != nil {
		return Advice{}, err
	}
	if a.cache != nil {
		if err := a.cache.Set(ctx, key, raw); err != nil {
			a.logger.Warn("advice cache write failed", "error", err)
		}
	}
	return ParseAdvice(raw), nil
}
