package advisor

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openAITextModel   = "gpt-3.5-turbo"
	openAIVisionModel = "gpt-4o-mini"
	openAIMaxTokens   = 300
)

type OpenAI struct {
	key     string
	model   string
	baseURL string
	client  *http.Client
}

func newOpenAI(cfg Config) *OpenAI {
	base := cfg.BaseURL
	if base == "" {
		base = openAIBaseURL
	}
	return &OpenAI{key: cfg.APIKey, model: cfg.Model, baseURL: strings.TrimRight(base, "/"), client: cfg.HTTPClient}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Model() string {
	if o.model != "" {
		return o.model
	}
	return openAITextModel
}

func (o *OpenAI) SupportsImages() bool { return true }

type openAIMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openAIPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Suggest(ctx context.Context, p Prompt) (string, error) {
	model := o.model
	if model == "" {
		model = openAITextModel
		if p.Image {
			model = openAIVisionModel
		}
	}
	msg := openAIMessage{Role: "user", Content: p.Text}
	if p.ImageDataURL != "" {
		img := openAIPart{Type: "image_url"}
		img.ImageURL = &struct {
			URL string `json:"url"`
		}{URL: p.ImageDataURL}
		msg.Content = []openAIPart{{Type: "text", Text: p.Text}, img}
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+o.key)
	var out openAIResponse
	err := postJSON(ctx, o.client, o.baseURL+"/chat/completions", header,
		openAIRequest{Model: model, Messages: []openAIMessage{msg}, MaxTokens: openAIMaxTokens}, &out)
	if err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
