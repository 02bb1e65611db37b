package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/venturelens/venturelens/internal/httputil"
	"github.com/venturelens/venturelens/internal/model"
)

// serpBaseURL is the SerpAPI endpoint. Declared as a var so tests can
// substitute an httptest server.
var serpBaseURL = "https://serpapi.com/search.json"

// SerpClient queries SerpAPI's Google engine.
type SerpClient struct {
	APIKey   string
	Location string
	HTTP     *http.Client
}

type serpResponse struct {
	OrganicResults []struct {
		Position      int    `json:"position"`
		Title         string `json:"title"`
		Link          string `json:"link"`
		Snippet       string `json:"snippet"`
		DisplayedLink string `json:"displayed_link"`
	} `json:"organic_results"`
	AnswerBox *struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"answer_box"`
	NewsResults []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
		Date     string `json:"date"`
		Source   string `json:"source"`
	} `json:"news_results"`
}

func (c *SerpClient) get(ctx context.Context, params url.Values) (*serpResponse, error) {
	params.Set("api_key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi returned HTTP %d", resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing serpapi response: %w", err)
	}
	return &sr, nil
}

// Search runs a web search and returns up to num organic results. When the
// engine produced an answer box it is prepended as position 0.
func (c *SerpClient) Search(ctx context.Context, query string, num int) (*model.SearchResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}
	if num <= 0 {
		num = 10
	}
	if num > 20 {
		num = 20
	}

	params := url.Values{
		"engine": {"google"},
		"q":      {query},
		"num":    {strconv.Itoa(num)},
	}
	if c.Location != "" {
		params.Set("location", c.Location)
	}

	sr, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	out := &model.SearchResponse{}
	for i, r := range sr.OrganicResults {
		if i >= num {
			break
		}
		out.Results = append(out.Results, model.SearchResult{
			Position:      i + 1,
			Title:         r.Title,
			Link:          r.Link,
			Snippet:       r.Snippet,
			DisplayedLink: r.DisplayedLink,
		})
	}
	if sr.AnswerBox != nil {
		out.Results = append([]model.SearchResult{{
			Position: 0,
			Title:    sr.AnswerBox.Title,
			Link:     sr.AnswerBox.Link,
			Snippet:  sr.AnswerBox.Snippet,
		}}, out.Results...)
	}
	return out, nil
}

// SearchNews runs a news search restricted to the given period
// (hour, day, week, month, year).
func (c *SerpClient) SearchNews(ctx context.Context, query string, num int, period string) (*model.NewsResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}
	if num <= 0 {
		num = 5
	}
	if num > 10 {
		num = 10
	}
	if period == "" {
		period = "month"
	}

	params := url.Values{
		"engine": {"google"},
		"q":      {query},
		"tbm":    {"nws"},
		"num":    {strconv.Itoa(num)},
		"tbs":    {"qdr:" + period[:1]},
	}

	sr, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	out := &model.NewsResponse{}
	for i, a := range sr.NewsResults {
		if i >= num {
			break
		}
		out.NewsResults = append(out.NewsResults, model.NewsResult{
			Position: i + 1,
			Title:    a.Title,
			Link:     a.Link,
			Snippet:  a.Snippet,
			Date:     a.Date,
			Source:   a.Source,
		})
	}
	return out, nil
}

// SearchTool exposes web search to the pipeline.
type SearchTool struct {
	Client *SerpClient
}

func (t *SearchTool) Name() string { return "search" }

func (t *SearchTool) Description() string {
	return "Search the web for information using Google Search API"
}

func (t *SearchTool) Call(ctx context.Context, args map[string]any) (string, error) {
	query := stringArg(args, "query", "")
	num := intArg(args, "num_results", 10)

	resp, err := t.Client.Search(ctx, query, num)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	return string(data), nil
}

// NewsSearchTool exposes news search to the pipeline.
type NewsSearchTool struct {
	Client *SerpClient
}

func (t *NewsSearchTool) Name() string { return "search_news" }

func (t *NewsSearchTool) Description() string {
	return "Search for recent news articles on a specific topic"
}

func (t *NewsSearchTool) Call(ctx context.Context, args map[string]any) (string, error) {
	query := stringArg(args, "query", "")
	num := intArg(args, "num_results", 5)
	period := stringArg(args, "time_period", "month")

	resp, err := t.Client.SearchNews(ctx, query, num, period)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	return string(data), nil
}
