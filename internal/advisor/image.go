package advisor

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxImageBytes = 5 << 20

var ErrImageTooLarge = errString("image exceeds size limit")

// ImageFetcher loads an image and returns it as a data URL.
type ImageFetcher interface {
	Fetch(ctx context.Context, pageURL, src string) (string, error)
}

// HTTPImageFetcher resolves src against the page URL and downloads it.
type HTTPImageFetcher struct {
	Client *http.Client
	// MaxBytes caps the image size; zero means 5 MiB.
	MaxBytes int64
}

func (f HTTPImageFetcher) Fetch(ctx context.Context, pageURL, src string) (string, error) {
	if strings.HasPrefix(src, "data:") {
		return src, nil
	}
	ref, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("image src: %w", err)
	}
	if base, err := url.Parse(pageURL); err == nil {
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme != "http" && ref.Scheme != "https" {
		return "", fmt.Errorf("image src %q is not fetchable", ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.String(), nil)
	if err != nil {
		return "", err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch image: %s", resp.Status)
	}
	limit := f.MaxBytes
	if limit <= 0 {
		limit = maxImageBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w of %d bytes: %s", ErrImageTooLarge, limit, ref)
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" || strings.HasPrefix(mime, "application/octet-stream") {
		mime = http.DetectContentType(data)
	}
	mime, _, _ = strings.Cut(mime, ";")
	return "data:" + strings.TrimSpace(mime) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
