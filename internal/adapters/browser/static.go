package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"heuristicheck/internal/dom"
)

// MaxPageBytes caps the markup read by StaticFetcher.
const MaxPageBytes = 10 << 20

// StaticFetcher downloads markup without rendering it. Styles and boxes come from inline
// declarations and presentational attributes only.
type StaticFetcher struct {
	Client *http.Client
}

func (f StaticFetcher) Capture(ctx context.Context, url string) (*dom.Document, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return dom.Parse(io.LimitReader(resp.Body, MaxPageBytes), url)
}

// LoadFile parses a local HTML file. The document URL is the file:// URL of its absolute path.
func LoadFile(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return dom.Parse(io.LimitReader(f, MaxPageBytes), "file://"+filepath.ToSlash(abs))
}
