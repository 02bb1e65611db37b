package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/venturelens/venturelens/internal/model"
)

// TrendsTool aggregates Reddit and Twitter activity for a topic into a
// structured trends record. Either client may be nil; the tool reports on
// whatever platforms are available and errors only when both are missing
// or both platform calls fail.
type TrendsTool struct {
	Reddit  *RedditClient
	Twitter *TwitterClient
}

func (t *TrendsTool) Name() string { return "analyze_trends" }

func (t *TrendsTool) Description() string {
	return "Analyze social media trends and sentiment for a topic"
}

// trendsPayload is the JSON the tool returns; the social stage unmarshals
// it straight into model.SocialTrends.
type trendsPayload struct {
	Source        string          `json:"source"`
	Summary       string          `json:"summary"`
	Sentiment     model.Sentiment `json:"sentiment"`
	PostsAnalyzed int             `json:"posts_analyzed"`
	AvgEngagement float64         `json:"avg_engagement"`
}

func (t *TrendsTool) Call(ctx context.Context, args map[string]any) (string, error) {
	topic := stringArg(args, "topic", "")
	if topic == "" {
		return "", fmt.Errorf("topic parameter is required")
	}
	period := stringArg(args, "time_period", "month")

	platforms := stringsArg(args, "platforms")
	if len(platforms) == 0 {
		platforms = []string{"both"}
	}
	wantReddit := false
	wantTwitter := false
	for _, p := range platforms {
		switch p {
		case "reddit":
			wantReddit = true
		case "twitter":
			wantTwitter = true
		case "both":
			wantReddit = true
			wantTwitter = true
		}
	}

	var (
		summary      strings.Builder
		allText      strings.Builder
		posts        int
		engagement   float64
		platformErrs []error
		reported     int
	)

	if wantReddit && t.Reddit != nil {
		redditPosts, err := t.Reddit.SearchPosts(ctx, topic, 50, period)
		if err != nil {
			platformErrs = append(platformErrs, fmt.Errorf("reddit: %w", err))
		} else {
			reported++
			summary.WriteString(redditSection(topic, redditPosts, &allText, &posts, &engagement))
		}
	}

	if wantTwitter && t.Twitter != nil {
		tweets, err := t.Twitter.SearchRecent(ctx, topic, 100)
		if err != nil {
			platformErrs = append(platformErrs, fmt.Errorf("twitter: %w", err))
		} else {
			reported++
			summary.WriteString(twitterSection(topic, tweets, &allText, &posts, &engagement))
		}
	}

	if reported == 0 {
		if len(platformErrs) > 0 {
			return "", fmt.Errorf("no social platform responded: %v", platformErrs)
		}
		return "", fmt.Errorf("no social platform configured")
	}

	activity := "low"
	switch {
	case posts > 70:
		activity = "high"
	case posts > 25:
		activity = "moderate"
	}
	fmt.Fprintf(&summary, "Overall: '%s' shows %s social media activity over the last %s.\n", topic, activity, period)

	avg := 0.0
	if posts > 0 {
		avg = engagement / float64(posts)
	}

	payload := trendsPayload{
		Source:        "social_trends_api",
		Summary:       summary.String(),
		Sentiment:     AnalyzeSentiment(allText.String()),
		PostsAnalyzed: posts,
		AvgEngagement: avg,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding trends payload: %w", err)
	}
	return string(data), nil
}

func redditSection(topic string, redditPosts []RedditPost, allText *strings.Builder, posts *int, engagement *float64) string {
	var b strings.Builder
	b.WriteString("Reddit Analysis:\n")

	if len(redditPosts) == 0 {
		b.WriteString("- No Reddit posts found for this topic\n\n")
		return b.String()
	}

	var totalScore, totalComments int
	subCounts := map[string]int{}
	for _, p := range redditPosts {
		totalScore += p.Score
		totalComments += p.NumComments
		subCounts[p.Subreddit]++
		allText.WriteString(p.Title)
		allText.WriteString(" ")
		allText.WriteString(p.Text)
		allText.WriteString(" ")
	}
	*posts += len(redditPosts)
	*engagement += float64(totalScore + totalComments)

	n := float64(len(redditPosts))
	fmt.Fprintf(&b, "- Posts Analyzed: %d\n", len(redditPosts))
	fmt.Fprintf(&b, "- Average Score: %.1f\n", float64(totalScore)/n)
	fmt.Fprintf(&b, "- Average Comments: %.1f\n", float64(totalComments)/n)
	fmt.Fprintf(&b, "- Top Subreddits: %s\n", topSubreddits(subCounts, 5))

	top := topRedditPosts(redditPosts, 3)
	b.WriteString("Top Discussions:\n")
	for i, p := range top {
		title := p.Title
		if len(title) > 80 {
			title = title[:80] + "..."
		}
		fmt.Fprintf(&b, "%d. %s (Score: %d, Comments: %d)\n", i+1, title, p.Score, p.NumComments)
	}
	b.WriteString("\n")
	return b.String()
}

func twitterSection(topic string, tweets []Tweet, allText *strings.Builder, posts *int, engagement *float64) string {
	var b strings.Builder
	b.WriteString("Twitter Analysis:\n")

	if len(tweets) == 0 {
		b.WriteString("- No tweets found for this topic\n\n")
		return b.String()
	}

	var likes, retweets, replies int
	for _, tw := range tweets {
		likes += tw.Metrics.LikeCount
		retweets += tw.Metrics.RetweetCount
		replies += tw.Metrics.ReplyCount
		allText.WriteString(tw.Text)
		allText.WriteString(" ")
	}
	*posts += len(tweets)
	*engagement += float64(likes + retweets + replies)

	fmt.Fprintf(&b, "- Tweets Analyzed: %d\n", len(tweets))
	fmt.Fprintf(&b, "- Total Likes: %d\n", likes)
	fmt.Fprintf(&b, "- Total Retweets: %d\n", retweets)
	fmt.Fprintf(&b, "- Average Engagement: %.1f\n", float64(likes+retweets+replies)/float64(len(tweets)))

	sorted := make([]Tweet, len(tweets))
	copy(sorted, tweets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Metrics.LikeCount > sorted[j].Metrics.LikeCount
	})
	b.WriteString("Top Tweets:\n")
	for i, tw := range sorted {
		if i >= 3 {
			break
		}
		text := tw.Text
		if len(text) > 100 {
			text = text[:100] + "..."
		}
		fmt.Fprintf(&b, "%d. %s (Likes: %d)\n", i+1, text, tw.Metrics.LikeCount)
	}
	b.WriteString("\n")
	return b.String()
}

func topSubreddits(counts map[string]int, n int) string {
	type sc struct {
		name  string
		count int
	}
	var all []sc
	for name, count := range counts {
		all = append(all, sc{name, count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].name < all[j].name
	})

	var parts []string
	for i, s := range all {
		if i >= n {
			break
		}
		parts = append(parts, fmt.Sprintf("r/%s(%d)", s.name, s.count))
	}
	return strings.Join(parts, ", ")
}

func topRedditPosts(posts []RedditPost, n int) []RedditPost {
	sorted := make([]RedditPost, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
