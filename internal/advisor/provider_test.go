package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(Config{Provider: "openai"})
	assert.ErrorIs(t, err, ErrMissingKey)

	p, err := NewProvider(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
	assert.Equal(t, "gpt-3.5-turbo", p.Model())

	p, err = NewProvider(Config{Provider: "Gemini", APIKey: "k", Model: "gemini-1.5-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())
	assert.Equal(t, "gemini-1.5-pro", p.Model())

	_, err = NewProvider(Config{Provider: "claude", APIKey: "k"})
	assert.Error(t, err)
}

func TestOpenAISuggest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"❌ **Error:** bad"}}]}`))
	}))
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "sk-test", BaseURL: srv.URL})
	require.NoError(t, err)

	reply, err := p.Suggest(context.Background(), Prompt{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "❌ **Error:** bad", reply)
	assert.Equal(t, "gpt-3.5-turbo", got["model"])
	assert.Equal(t, float64(300), got["max_tokens"])
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].(map[string]any)["content"])

	_, err = p.Suggest(context.Background(), Prompt{Text: "img", Image: true, ImageDataURL: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	parts := got["messages"].([]any)[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)
	assert.Equal(t, "image_url", parts[1].(map[string]any)["type"])
	assert.Equal(t, "data:image/png;base64,AAAA", parts[1].(map[string]any)["image_url"].(map[string]any)["url"])
}

func TestProviderErrorPayloadIsReturnedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	for _, name := range []string{"openai", "gemini"} {
		p, err := NewProvider(Config{Provider: name, APIKey: "bad", BaseURL: srv.URL})
		require.NoError(t, err)
		_, err = p.Suggest(context.Background(), Prompt{Text: "x"})
		require.Error(t, err)
		assert.Equal(t, "Incorrect API key provided", err.Error(), name)
	}
}

func TestProviderHTTPStatusWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = p.Suggest(context.Background(), Prompt{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGeminiSuggest(t *testing.T) {
	var got geminiRequest
	var path, key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, key = r.URL.Path, r.URL.Query().Get("key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"✅ **Fix:** add alt"}]}}]}`))
	}))
	defer srv.Close()

	p, err := NewProvider(Config{Provider: "gemini", APIKey: "g-key", BaseURL: srv.URL})
	require.NoError(t, err)

	reply, err := p.Suggest(context.Background(), Prompt{Text: "t"})
	require.NoError(t, err)
	assert.Equal(t, "✅ **Fix:** add alt", reply)
	assert.Equal(t, "/models/gemini-pro:generateContent", path)
	assert.Equal(t, "g-key", key)
	require.Len(t, got.Contents, 1)
	assert.Len(t, got.Contents[0].Parts, 1)

	_, err = p.Suggest(context.Background(), Prompt{Text: "t", Image: true, ImageDataURL: "data:image/jpeg;base64,QUJD"})
	require.NoError(t, err)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", path)
	require.Len(t, got.Contents[0].Parts, 2)
	inline := got.Contents[0].Parts[1].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/jpeg", inline.MimeType)
	assert.Equal(t, "QUJD", inline.Data)
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p, err := NewProvider(Config{Provider: "gemini", APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = p.Suggest(context.Background(), Prompt{Text: "t"})
	assert.Error(t, err)
}
