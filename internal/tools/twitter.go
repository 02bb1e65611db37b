package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/venturelens/venturelens/internal/httputil"
)

// twitterSearchURL is the v2 recent-search endpoint. Declared as a var so
// tests can substitute an httptest server.
var twitterSearchURL = "https://api.twitter.com/2/tweets/search/recent"

// TwitterClient searches recent tweets with a v2 bearer token.
type TwitterClient struct {
	BearerToken string
	HTTP        *http.Client
}

// TweetMetrics are the public engagement counters on a tweet.
type TweetMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	QuoteCount   int `json:"quote_count"`
}

// Tweet is one recent-search hit.
type Tweet struct {
	Text    string       `json:"text"`
	Lang    string       `json:"lang"`
	Metrics TweetMetrics `json:"public_metrics"`
}

// Engagement sums likes, retweets and replies.
func (t Tweet) Engagement() int {
	return t.Metrics.LikeCount + t.Metrics.RetweetCount + t.Metrics.ReplyCount
}

// SearchRecent returns recent tweets matching query (last 7 days on the
// standard tier). maxResults is capped at the API limit of 100.
func (c *TwitterClient) SearchRecent(ctx context.Context, query string, maxResults int) ([]Tweet, error) {
	if maxResults <= 0 || maxResults > 100 {
		maxResults = 100
	}
	// The API rejects max_results below 10.
	if maxResults < 10 {
		maxResults = 10
	}

	params := url.Values{
		"query":        {query},
		"max_results":  {strconv.Itoa(maxResults)},
		"tweet.fields": {"created_at,public_metrics,lang"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twitterSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.BearerToken)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("twitter search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter search returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Data []Tweet `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing twitter response: %w", err)
	}
	return body.Data, nil
}
