package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendsToolAggregatesBothPlatforms(t *testing.T) {
	reddit, _ := newRedditServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"children": [
			{"data": {"title": "Robot baristas are great", "selftext": "love the idea", "score": 100, "num_comments": 20, "subreddit": "coffee"}},
			{"data": {"title": "Coffee automation", "selftext": "", "score": 50, "num_comments": 10, "subreddit": "technology"}}
		]}}`)
	})
	twitter := newTwitterServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [
			{"text": "robot baristas are amazing", "lang": "en", "public_metrics": {"like_count": 30, "retweet_count": 5, "reply_count": 5}}
		]}`)
	})

	tool := &TrendsTool{Reddit: reddit, Twitter: twitter}
	out, err := tool.Call(context.Background(), map[string]any{
		"topic":     "robot barista",
		"platforms": []string{"reddit", "twitter"},
	})
	require.NoError(t, err)

	var payload struct {
		Source        string  `json:"source"`
		Summary       string  `json:"summary"`
		PostsAnalyzed int     `json:"posts_analyzed"`
		AvgEngagement float64 `json:"avg_engagement"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.Equal(t, "social_trends_api", payload.Source)
	assert.Equal(t, 3, payload.PostsAnalyzed)
	// Reddit: 150 score + 30 comments; Twitter: 40. 220 across 3 posts.
	assert.InDelta(t, 220.0/3.0, payload.AvgEngagement, 0.01)
	assert.Contains(t, payload.Summary, "Reddit Analysis")
	assert.Contains(t, payload.Summary, "Twitter Analysis")
	assert.Contains(t, payload.Summary, "r/coffee(1)")
	assert.Contains(t, payload.Summary, "low social media activity")
}

func TestTrendsToolSucceedsWhenOnePlatformFails(t *testing.T) {
	reddit, _ := newRedditServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"children": [
			{"data": {"title": "Robot coffee", "score": 10, "num_comments": 2, "subreddit": "coffee"}}
		]}}`)
	})
	twitter := newTwitterServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	tool := &TrendsTool{Reddit: reddit, Twitter: twitter}
	out, err := tool.Call(context.Background(), map[string]any{"topic": "robot barista"})
	require.NoError(t, err)
	assert.Contains(t, out, "Reddit Analysis")
}

func TestTrendsToolFailsWithNoPlatforms(t *testing.T) {
	tool := &TrendsTool{}
	_, err := tool.Call(context.Background(), map[string]any{"topic": "robot barista"})
	assert.Error(t, err)
}

func TestTrendsToolFailsWhenAllPlatformsFail(t *testing.T) {
	twitter := newTwitterServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	tool := &TrendsTool{Twitter: twitter}
	_, err := tool.Call(context.Background(), map[string]any{"topic": "robot barista"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no social platform responded")
}

func TestTrendsToolRequiresTopic(t *testing.T) {
	tool := &TrendsTool{}
	_, err := tool.Call(context.Background(), map[string]any{})
	assert.Error(t, err)
}
