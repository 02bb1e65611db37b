package model

// Sentiment holds normalized sentiment scores. The three scores sum to 1.
type Sentiment struct {
	Positive float64 `json:"positive" yaml:"positive"`
	Negative float64 `json:"negative" yaml:"negative"`
	Neutral  float64 `json:"neutral" yaml:"neutral"`
}

// Label maps the dominant score to a sentiment label.
func (s Sentiment) Label() string {
	switch {
	case s.Positive > s.Negative && s.Positive > s.Neutral:
		return "positive"
	case s.Negative > s.Positive && s.Negative > s.Neutral:
		return "negative"
	default:
		return "neutral"
	}
}

// SocialTrends is the structured output of the social trends stage.
// Source records where the data came from: "social_trends_api" when the
// platform tools answered, "web_search" when the stage fell back to plain
// web search.
type SocialTrends struct {
	Source        string    `json:"source" yaml:"source"`
	Summary       string    `json:"summary" yaml:"summary"`
	Sentiment     Sentiment `json:"sentiment" yaml:"sentiment"`
	PostsAnalyzed int       `json:"posts_analyzed" yaml:"posts_analyzed"`
	AvgEngagement float64   `json:"avg_engagement" yaml:"avg_engagement"`
}
