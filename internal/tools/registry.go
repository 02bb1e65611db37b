package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/venturelens/venturelens/internal/config"
)

// Registry holds the tools available to a pipeline run, keyed by name.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Call invokes the named tool. An unregistered name is an error; the
// pipeline treats it like any other tool failure.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	return t.Call(ctx, args)
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build assembles the registry from configured credentials. Tools whose
// credentials are missing are simply not registered; the pipeline degrades
// the stages that need them.
func Build(cfg *config.Config, logger *slog.Logger) *Registry {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	reg := NewRegistry()

	if cfg.Serp.APIKey != "" {
		serp := &SerpClient{APIKey: cfg.Serp.APIKey, Location: cfg.Serp.Location, HTTP: httpClient}
		reg.Register(&SearchTool{Client: serp})
		reg.Register(&NewsSearchTool{Client: serp})
	} else {
		logger.Warn("serp api key not set, web search tools unavailable")
	}

	if cfg.Polygon.APIKey != "" {
		polygon := &PolygonClient{APIKey: cfg.Polygon.APIKey, HTTP: httpClient}
		reg.Register(&MarketSizeTool{Client: polygon})
		reg.Register(&GrowthTrendsTool{Client: polygon})
		reg.Register(&CompetitorFinancialsTool{Client: polygon})
	} else {
		logger.Warn("polygon api key not set, market data tools unavailable")
	}

	trends := &TrendsTool{}
	if cfg.Reddit.ClientID != "" && cfg.Reddit.ClientSecret != "" {
		trends.Reddit = &RedditClient{
			ClientID:     cfg.Reddit.ClientID,
			ClientSecret: cfg.Reddit.ClientSecret,
			UserAgent:    cfg.Reddit.UserAgent,
			HTTP:         httpClient,
		}
	}
	if cfg.Twitter.BearerToken != "" {
		trends.Twitter = &TwitterClient{BearerToken: cfg.Twitter.BearerToken, HTTP: httpClient}
	}
	if trends.Reddit != nil || trends.Twitter != nil {
		reg.Register(trends)
	} else {
		logger.Warn("no social credentials set, trends tool unavailable")
	}

	logger.Info("tool registry built", "tools", reg.Names())
	return reg
}
