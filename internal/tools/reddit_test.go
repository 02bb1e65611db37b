package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedditServer(t *testing.T, search http.HandlerFunc) (*RedditClient, *int) {
	t.Helper()
	tokenRequests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		fmt.Fprint(w, `{"access_token": "tok-123", "expires_in": 3600}`)
	})
	mux.HandleFunc("/search", search)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	oldToken, oldBase := redditTokenURL, redditAPIBase
	redditTokenURL = srv.URL + "/api/v1/access_token"
	redditAPIBase = srv.URL
	t.Cleanup(func() { redditTokenURL, redditAPIBase = oldToken, oldBase })

	return &RedditClient{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		UserAgent:    "venturelens-test/1.0",
		HTTP:         srv.Client(),
	}, &tokenRequests
}

func TestRedditSearchPosts(t *testing.T) {
	client, _ := newRedditServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "robot barista", r.URL.Query().Get("q"))
		assert.Equal(t, "month", r.URL.Query().Get("t"))
		fmt.Fprint(w, `{"data": {"children": [
			{"data": {"title": "Tried a robot barista", "selftext": "it was great", "score": 120, "upvote_ratio": 0.95, "num_comments": 40, "subreddit": "coffee"}},
			{"data": {"title": "Robot coffee is overhyped", "selftext": "", "score": 30, "upvote_ratio": 0.6, "num_comments": 80, "subreddit": "technology"}}
		]}}`)
	})

	posts, err := client.SearchPosts(context.Background(), "robot barista", 50, "month")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Tried a robot barista", posts[0].Title)
	assert.Equal(t, 120, posts[0].Score)
	assert.Equal(t, "coffee", posts[0].Subreddit)
}

func TestRedditTokenIsCached(t *testing.T) {
	client, tokenRequests := newRedditServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"children": []}}`)
	})

	for i := 0; i < 3; i++ {
		_, err := client.SearchPosts(context.Background(), "q", 10, "week")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *tokenRequests)
}

func TestRedditTokenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	old := redditTokenURL
	redditTokenURL = srv.URL + "/api/v1/access_token"
	t.Cleanup(func() { redditTokenURL = old })

	client := &RedditClient{ClientID: "bad", ClientSecret: "bad", HTTP: srv.Client()}
	_, err := client.SearchPosts(context.Background(), "q", 10, "week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
