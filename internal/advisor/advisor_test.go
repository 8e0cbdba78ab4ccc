package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

type fakeProvider struct {
	images  bool
	reply   string
	err     error
	prompts []Prompt
}

func (f *fakeProvider) Name() string         { return "fake" }
func (f *fakeProvider) Model() string        { return "fake-1" }
func (f *fakeProvider) SupportsImages() bool { return f.images }

func (f *fakeProvider) Suggest(_ context.Context, p Prompt) (string, error) {
	f.prompts = append(f.prompts, p)
	return f.reply, f.err
}

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

const sampleReply = "❌ **Error:** The text contrast is too low (1.6:1).\n✅ **Fix:** Darken the heading color.\n```css\nh1 { color: #333333; }\n```"

func parseDoc(t *testing.T, markup, pageURL string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(markup, pageURL)
	require.NoError(t, err)
	return doc
}

func handle(t *testing.T, doc *dom.Document, expr string) dom.Handle {
	t.Helper()
	hs, err := doc.Query(expr)
	require.NoError(t, err)
	require.NotEmpty(t, hs)
	return hs[0]
}

func TestParseAdvice(t *testing.T) {
	a := ParseAdvice(sampleReply)
	assert.Equal(t, "The text contrast is too low (1.6:1).", a.Problem)
	assert.Equal(t, "Darken the heading color.", a.Fix)
	assert.Equal(t, "css", a.Language)
	assert.Equal(t, "h1 { color: #333333; }", a.Code)
	assert.Equal(t, sampleReply, a.Raw)

	plain := ParseAdvice("no structure here")
	assert.Empty(t, plain.Problem)
	assert.Empty(t, plain.Code)
	assert.Equal(t, "no structure here", plain.Raw)
}

func TestBuildContextAndPrompt(t *testing.T) {
	long := strings.Repeat("word ", 20)
	doc := parseDoc(t, `<html><body><h1 id="title" class="hero big" style="color:#ccc">`+long+`</h1></body></html>`, "https://example.com/")
	h := handle(t, doc, "//h1")
	doc.SetMeta(h, domain.AuditMeta{FgColor: "rgb(204, 204, 204)", BgColor: "rgb(255, 255, 255)", Ratio: 1.61})

	c := BuildContext(doc, h)
	assert.Equal(t, "h1", c.Tag)
	assert.Equal(t, "title", c.ID)
	assert.Equal(t, "hero big", c.Classes)
	assert.Equal(t, strings.TrimSpace(long)[:50]+"...", c.TextPreview)
	assert.Equal(t, "#ccc", c.Styles.Color)
	require.NotNil(t, c.Meta)
	assert.LessOrEqual(t, len(c.HTML), 300)
	assert.False(t, c.IsImage())

	p := BuildPrompt(c, "Hard to Read")
	assert.Contains(t, p, "- Element: h1\n")
	assert.Contains(t, p, `- Issue: "Hard to Read"`)
	assert.Contains(t, p, `"currentRatio":1.61`)
	assert.Contains(t, p, ErrorMarker)
	assert.Contains(t, p, FixMarker)

	bare := BuildContext(doc, handle(t, doc, "//body"))
	assert.Contains(t, BuildPrompt(bare, "x"), "- Metadata: {}\n")
}

func TestRequestAdviceParsesReply(t *testing.T) {
	doc := parseDoc(t, `<html><body><h1>x</h1></body></html>`, "https://example.com/")
	fp := &fakeProvider{reply: sampleReply}

	adv, err := New(fp, quiet).RequestAdvice(context.Background(), doc, handle(t, doc, "//h1"), "Hard to Read")
	require.NoError(t, err)
	assert.Equal(t, "Darken the heading color.", adv.Fix)
	require.Len(t, fp.prompts, 1)
	assert.False(t, fp.prompts[0].Image)
}

func TestRequestAdviceWithoutProvider(t *testing.T) {
	doc := parseDoc(t, `<html><body><h1>x</h1></body></html>`, "")
	_, err := New(nil).RequestAdvice(context.Background(), doc, handle(t, doc, "//h1"), "x")
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Equal(t, "", New(nil).Model())
}

func TestRequestAdviceProviderError(t *testing.T) {
	doc := parseDoc(t, `<html><body><h1>x</h1></body></html>`, "")
	fp := &fakeProvider{err: errors.New("quota exceeded")}
	_, err := New(fp, quiet).RequestAdvice(context.Background(), doc, handle(t, doc, "//h1"), "x")
	require.Error(t, err)
	assert.Equal(t, "quota exceeded", err.Error())
}

func TestRequestAdviceAttachesImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nrest")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/img/cat.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	doc := parseDoc(t, `<html><body><img src="img/cat.png"><img id="gone" src="/missing.png"></body></html>`, srv.URL+"/index.html")

	fp := &fakeProvider{images: true, reply: "ok"}
	a := New(fp, quiet, WithImageFetcher(HTTPImageFetcher{Client: srv.Client()}))

	_, err := a.RequestAdvice(context.Background(), doc, handle(t, doc, "//img[1]"), "Accessibility Risk")
	require.NoError(t, err)
	require.Len(t, fp.prompts, 1)
	assert.True(t, fp.prompts[0].Image)
	assert.True(t, strings.HasPrefix(fp.prompts[0].ImageDataURL, "data:image/png;base64,"))

	_, err = a.RequestAdvice(context.Background(), doc, handle(t, doc, "//img[@id='gone']"), "Accessibility Risk")
	require.NoError(t, err, "image failures fall back to text")
	assert.Empty(t, fp.prompts[1].ImageDataURL)

	textOnly := &fakeProvider{reply: "ok"}
	_, err = New(textOnly, quiet, WithImageFetcher(HTTPImageFetcher{Client: srv.Client()})).
		RequestAdvice(context.Background(), doc, handle(t, doc, "//img[1]"), "x")
	require.NoError(t, err)
	assert.Empty(t, textOnly.prompts[0].ImageDataURL)
}

func TestHTTPImageFetcherDataURL(t *testing.T) {
	got, err := HTTPImageFetcher{}.Fetch(context.Background(), "https://example.com/", "data:image/gif;base64,R0lG")
	require.NoError(t, err)
	assert.Equal(t, "data:image/gif;base64,R0lG", got)

	_, err = HTTPImageFetcher{}.Fetch(context.Background(), "", "cat.png")
	assert.Error(t, err, "relative src without a page URL")
}

func TestHTTPImageFetcherRejectsOversizedImages(t *testing.T) {
	body := strings.Repeat("x", 64)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = io.WriteString(w, body)
	}))
	defer srv.Close()

	_, err := HTTPImageFetcher{Client: srv.Client(), MaxBytes: 63}.Fetch(context.Background(), srv.URL+"/", "big.png")
	assert.ErrorIs(t, err, ErrImageTooLarge)

	got, err := HTTPImageFetcher{Client: srv.Client(), MaxBytes: 64}.Fetch(context.Background(), srv.URL+"/", "big.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	cache, err := NewRedisCache(ctx, fmt.Sprintf("redis://%s", mr.Addr()), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	v, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.True(t, mr.Exists(cachePrefix+"k"))

	mr.FastForward(2 * time.Hour)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewRedisCache(ctx, "invalid://url", time.Hour)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}

func TestAdvisorUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	cache, err := NewRedisCache(ctx, fmt.Sprintf("redis://%s", mr.Addr()), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	doc := parseDoc(t, `<html><body><a href="#">x</a></body></html>`, "")
	fp := &fakeProvider{reply: sampleReply}
	a := New(fp, quiet, WithCache(cache))
	h := handle(t, doc, "//a")

	first, err := a.RequestAdvice(ctx, doc, h, "Broken Link")
	require.NoError(t, err)
	second, err := a.RequestAdvice(ctx, doc, h, "Broken Link")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, fp.prompts, 1, "second request is served from cache")

	_, err = a.RequestAdvice(ctx, doc, h, "Other Label")
	require.NoError(t, err)
	assert.Len(t, fp.prompts, 2)
}
