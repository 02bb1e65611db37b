package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentimentPositive(t *testing.T) {
	s := AnalyzeSentiment("this is great, I love it, amazing and useful")
	assert.Greater(t, s.Positive, s.Negative)
	assert.Greater(t, s.Positive, s.Neutral)
	assert.Equal(t, "positive", s.Label())
}

func TestAnalyzeSentimentNegative(t *testing.T) {
	s := AnalyzeSentiment("terrible product, overpriced and broken, the worst")
	assert.Greater(t, s.Negative, s.Positive)
	assert.Equal(t, "negative", s.Label())
}

func TestAnalyzeSentimentNoKeywords(t *testing.T) {
	s := AnalyzeSentiment("the quarterly report covers three regions")
	assert.InDelta(t, 0.33, s.Positive, 0.001)
	assert.InDelta(t, 0.33, s.Negative, 0.001)
	assert.InDelta(t, 0.34, s.Neutral, 0.001)
}

func TestAnalyzeSentimentSumsToOne(t *testing.T) {
	for _, text := range []string{
		"good bad okay",
		"love it, hate it",
		"",
		"decent but expensive, still helpful",
	} {
		s := AnalyzeSentiment(text)
		assert.InDelta(t, 1.0, s.Positive+s.Negative+s.Neutral, 0.01, "text %q", text)
	}
}
