package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heuristicheck/internal/advisor"
	"heuristicheck/internal/config"
)

func TestNewAdvisorReturnsCacheToClose(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		RedisURL:       "redis://" + mr.Addr(),
		AdviceCacheTTL: time.Hour,
		Advisor:        advisor.Config{Provider: "openai", APIKey: "sk-test"},
	}

	src, cache := newAdvisor(context.Background(), cfg, logger)
	require.NotNil(t, src)
	require.NotNil(t, cache)
	require.NoError(t, cache.Close())
	assert.Error(t, cache.Close(), "second close reports the closed client")
}

func TestNewAdvisorWithoutKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	src, cache := newAdvisor(context.Background(), config.Config{RedisURL: "redis://127.0.0.1:1"}, logger)
	assert.Nil(t, src)
	assert.Nil(t, cache)
}
