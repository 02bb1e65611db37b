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

func newTwitterServer(t *testing.T, handler http.HandlerFunc) *TwitterClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	old := twitterSearchURL
	twitterSearchURL = srv.URL
	t.Cleanup(func() { twitterSearchURL = old })

	return &TwitterClient{BearerToken: "bearer-token", HTTP: srv.Client()}
}

func TestTwitterSearchRecent(t *testing.T) {
	client := newTwitterServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))
		assert.Equal(t, "robot barista", r.URL.Query().Get("query"))
		assert.Equal(t, "created_at,public_metrics,lang", r.URL.Query().Get("tweet.fields"))
		fmt.Fprint(w, `{"data": [
			{"text": "robot baristas are amazing", "lang": "en", "public_metrics": {"like_count": 50, "retweet_count": 10, "reply_count": 5, "quote_count": 1}},
			{"text": "meh coffee robots", "lang": "en", "public_metrics": {"like_count": 2, "retweet_count": 0, "reply_count": 1, "quote_count": 0}}
		]}`)
	})

	tweets, err := client.SearchRecent(context.Background(), "robot barista", 100)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, 65, tweets[0].Engagement())
	assert.Equal(t, 3, tweets[1].Engagement())
}

func TestTwitterSearchClampsMaxResults(t *testing.T) {
	var gotMax string
	client := newTwitterServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("max_results")
		fmt.Fprint(w, `{"data": []}`)
	})

	_, err := client.SearchRecent(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Equal(t, "10", gotMax)

	_, err = client.SearchRecent(context.Background(), "q", 500)
	require.NoError(t, err)
	assert.Equal(t, "100", gotMax)
}

func TestTwitterSearchHTTPError(t *testing.T) {
	client := newTwitterServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.SearchRecent(context.Background(), "q", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
