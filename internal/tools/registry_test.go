package tools

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelens/venturelens/internal/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildWithAllCredentials(t *testing.T) {
	cfg := config.Default()
	cfg.Serp.APIKey = "serp-key"
	cfg.Polygon.APIKey = "poly-key"
	cfg.Reddit.ClientID = "id"
	cfg.Reddit.ClientSecret = "secret"
	cfg.Twitter.BearerToken = "bearer"

	reg := Build(cfg, discard())
	assert.Equal(t, []string{
		"analyze_trends",
		"get_competitor_financials",
		"get_growth_trends",
		"get_market_size",
		"search",
		"search_news",
	}, reg.Names())
}

func TestBuildSkipsToolsWithoutCredentials(t *testing.T) {
	cfg := config.Default()
	cfg.Serp.APIKey = "serp-key"

	reg := Build(cfg, discard())
	assert.Equal(t, []string{"search", "search_news"}, reg.Names())

	_, ok := reg.Get("get_market_size")
	assert.False(t, ok)
	_, ok = reg.Get("analyze_trends")
	assert.False(t, ok)
}

func TestBuildTrendsToolWithSinglePlatform(t *testing.T) {
	cfg := config.Default()
	cfg.Twitter.BearerToken = "bearer"

	reg := Build(cfg, discard())
	_, ok := reg.Get("analyze_trends")
	assert.True(t, ok)
}

func TestRegistryCallUnknownTool(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Call(context.Background(), "nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}
