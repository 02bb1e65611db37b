package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type SerpConfig struct {
	APIKey   string `toml:"api_key"`
	Location string `toml:"location"`
}

type PolygonConfig struct {
	APIKey string `toml:"api_key"`
}

type RedditConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	UserAgent    string `toml:"user_agent"`
}

type TwitterConfig struct {
	BearerToken string `toml:"bearer_token"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type ArchiveConfig struct {
	Path    string `toml:"path"`
	Enabled bool   `toml:"enabled"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Prompts holds the per-stage prompt templates. User templates are
// fmt.Sprintf formats; the pipeline documents the expected verbs for each.
// Empty fields fall back to the built-in defaults.
type Prompts struct {
	MarketResearchSystem string `toml:"market_research_system"`
	MarketResearchUser   string `toml:"market_research_user"`
	CompetitorSystem     string `toml:"competitor_system"`
	CompetitorUser       string `toml:"competitor_user"`
	SocialSystem         string `toml:"social_system"`
	SocialUser           string `toml:"social_user"`
	ViabilitySystem      string `toml:"viability_system"`
	ViabilityUser        string `toml:"viability_user"`
	RecommendationSystem string `toml:"recommendation_system"`
	RecommendationUser   string `toml:"recommendation_user"`
}

type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Serp    SerpConfig    `toml:"serp"`
	Polygon PolygonConfig `toml:"polygon"`
	Reddit  RedditConfig  `toml:"reddit"`
	Twitter TwitterConfig `toml:"twitter"`
	Server  ServerConfig  `toml:"server"`
	Archive ArchiveConfig `toml:"archive"`
	Log     LogConfig     `toml:"log"`
	Prompts Prompts       `toml:"prompts"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-1.5-flash-latest",
		},
		Serp:    SerpConfig{Location: "United States"},
		Reddit:  RedditConfig{UserAgent: "venturelens/1.0"},
		Server:  ServerConfig{Port: "8080"},
		Archive: ArchiveConfig{Path: "venturelens.db", Enabled: true},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads a TOML config file over the defaults and applies environment
// overrides. A missing file is not an error; defaults plus environment are
// used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables when present.
func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.LLM.Provider, "LLM_PROVIDER")
	set(&c.LLM.Model, "LLM_MODEL")
	set(&c.LLM.APIKey, "LLM_API_KEY")
	set(&c.LLM.APIKey, "GOOGLE_API_KEY") // original credential name for Gemini
	set(&c.LLM.BaseURL, "LLM_BASE_URL")
	set(&c.Serp.APIKey, "SERP_API_KEY")
	set(&c.Polygon.APIKey, "POLYGON_API_KEY")
	set(&c.Reddit.ClientID, "REDDIT_CLIENT_ID")
	set(&c.Reddit.ClientSecret, "REDDIT_CLIENT_SECRET")
	set(&c.Reddit.UserAgent, "REDDIT_USER_AGENT")
	set(&c.Twitter.BearerToken, "TWITTER_BEARER_TOKEN")
	set(&c.Server.Port, "PORT")
	set(&c.Archive.Path, "ARCHIVE_PATH")
}

// MissingRequired returns the names of required credentials that are unset.
// The LLM key and the SerpAPI key are required; everything else is optional
// and only degrades the corresponding tools.
func (c *Config) MissingRequired() []string {
	var missing []string
	if c.LLM.APIKey == "" && c.LLM.Provider != "ollama" {
		missing = append(missing, "LLM_API_KEY")
	}
	if c.Serp.APIKey == "" {
		missing = append(missing, "SERP_API_KEY")
	}
	return missing
}

// MissingOptional returns the names of unset optional credentials.
func (c *Config) MissingOptional() []string {
	var missing []string
	if c.Polygon.APIKey == "" {
		missing = append(missing, "POLYGON_API_KEY")
	}
	if c.Reddit.ClientID == "" || c.Reddit.ClientSecret == "" {
		missing = append(missing, "REDDIT_CLIENT_ID/REDDIT_CLIENT_SECRET")
	}
	if c.Twitter.BearerToken == "" {
		missing = append(missing, "TWITTER_BEARER_TOKEN")
	}
	return missing
}
