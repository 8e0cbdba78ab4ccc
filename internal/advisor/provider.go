package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMissingKey is returned when no API key is configured for the selected provider.
var ErrMissingKey = errString("Missing Key: check settings.")

type errString string

func (e errString) Error() string { return string(e) }

// Prompt is one advisory request. ImageDataURL is set only for image elements and
// only when the provider accepts images.
type Prompt struct {
	Text         string
	Image        bool
	ImageDataURL string
}

// AdvisoryProvider turns a prompt into advisory text.
type AdvisoryProvider interface {
	Name() string
	// Model is the model used for text prompts.
	Model() string
	SupportsImages() bool
	Suggest(ctx context.Context, p Prompt) (string, error)
}

type Config struct {
	Provider   string // openai|gemini
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewProvider selects the provider named in cfg. Empty means openai.
func NewProvider(cfg Config) (AdvisoryProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingKey
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "openai":
		return newOpenAI(cfg), nil
	case "gemini":
		return newGemini(cfg), nil
	}
	return nil, fmt.Errorf("unknown advisory provider %q", cfg.Provider)
}

// apiError is the error envelope both providers use.
type apiError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// postJSON sends body and decodes the reply into out. A provider error payload wins over
// the HTTP status.
func postJSON(ctx context.Context, client *http.Client, url string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	var envelope apiError
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return errString(envelope.Error.Message)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("provider returned %s", resp.Status)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
