package tools

import (
	"strings"

	"github.com/venturelens/venturelens/internal/model"
)

// Keyword lists for the lightweight sentiment scorer. This deliberately
// stays a dictionary heuristic: the trends tool only needs a coarse signal
// and must work without any extra API.
var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "awesome", "love", "like",
		"best", "fantastic", "wonderful", "perfect", "brilliant", "outstanding",
		"impressive", "innovative", "revolutionary", "helpful", "useful",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "hate", "horrible", "worst", "sucks",
		"disappointing", "useless", "broken", "failed", "problem", "issue",
		"expensive", "overpriced", "scam", "fake", "poor", "lacking",
	}
	neutralWords = []string{
		"okay", "average", "normal", "standard", "typical", "decent",
		"fair", "reasonable", "moderate", "acceptable",
	}
)

// AnalyzeSentiment scores text by keyword occurrence. When no keyword
// matches it returns the flat 0.33/0.33/0.34 prior.
func AnalyzeSentiment(text string) model.Sentiment {
	lower := strings.ToLower(text)

	count := func(words []string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				n++
			}
		}
		return n
	}

	pos := count(positiveWords)
	neg := count(negativeWords)
	neu := count(neutralWords)

	total := pos + neg + neu
	if total == 0 {
		return model.Sentiment{Positive: 0.33, Negative: 0.33, Neutral: 0.34}
	}

	return model.Sentiment{
		Positive: float64(pos) / float64(total),
		Negative: float64(neg) / float64(total),
		Neutral:  float64(neu) / float64(total),
	}
}
