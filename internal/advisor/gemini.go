package advisor

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const (
	geminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	geminiTextModel   = "gemini-pro"
	geminiVisionModel = "gemini-1.5-flash"
)

type Gemini struct {
	key     string
	model   string
	baseURL string
	client  *http.Client
}

func newGemini(cfg Config) *Gemini {
	base := cfg.BaseURL
	if base == "" {
		base = geminiBaseURL
	}
	return &Gemini{key: cfg.APIKey, model: cfg.Model, baseURL: strings.TrimRight(base, "/"), client: cfg.HTTPClient}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Model() string {
	if g.model != "" {
		return g.model
	}
	return geminiTextModel
}

func (g *Gemini) SupportsImages() bool { return true }

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []geminiContentEnvelope `json:"candidates"`
}

type geminiContentEnvelope struct {
	Content geminiContent `json:"content"`
}

func (g *Gemini) Suggest(ctx context.Context, p Prompt) (string, error) {
	model := g.model
	if model == "" {
		model = geminiTextModel
		if p.Image {
			model = geminiVisionModel
		}
	}
	content := geminiContent{Parts: []geminiPart{{Text: p.Text}}}
	if mime, data, ok := splitDataURL(p.ImageDataURL); ok {
		content.Parts = append(content.Parts, geminiPart{InlineData: &geminiInlineData{MimeType: mime, Data: data}})
	}

	endpoint := g.baseURL + "/models/" + url.PathEscape(model) + ":generateContent?key=" + url.QueryEscape(g.key)
	var out geminiResponse
	if err := postJSON(ctx, g.client, endpoint, nil, geminiRequest{Contents: []geminiContent{content}}, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// splitDataURL splits "data:image/png;base64,AAAA" into its mime type and payload.
func splitDataURL(s string) (mime, data string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	head, data, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mime, _, _ = strings.Cut(head, ";")
	return mime, data, true
}
