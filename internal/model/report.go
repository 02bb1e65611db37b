package model

import (
	"time"
)

// Stage names, in pipeline order.
const (
	StageMarketResearch     = "market_research"
	StageCompetitorAnalysis = "competitor_analysis"
	StageSocialTrends       = "social_trends"
	StageViability          = "viability_assessment"
	StageRecommendations    = "final_recommendations"
)

// Stages lists the pipeline stages in execution order.
var Stages = []string{
	StageMarketResearch,
	StageCompetitorAnalysis,
	StageSocialTrends,
	StageViability,
	StageRecommendations,
}

// DegradedStage records a stage that fell back to its default record.
type DegradedStage struct {
	Stage  string `json:"stage" yaml:"stage"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report is the accumulating state passed through the pipeline and the
// final artifact returned to the caller. Each stage writes exactly one
// field group; later stages only read earlier fields. The report is created
// once per request and never shared between requests.
type Report struct {
	ID        string    `json:"id" yaml:"id"`
	Idea      string    `json:"idea" yaml:"idea"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Stage 1: market research.
	Market        MarketAnalysis `json:"market_analysis" yaml:"market_analysis"`
	SearchResults []SearchResult `json:"search_results" yaml:"search_results"`

	// Stage 2: competitor analysis.
	Competitors []Competitor `json:"competitors" yaml:"competitors"`

	// Stage 3: social trends.
	Social SocialTrends `json:"social_trends" yaml:"social_trends"`

	// Stage 4: viability assessment.
	Viability Viability `json:"viability" yaml:"viability"`

	// Stage 5: final recommendations.
	FinalAnalysis   string   `json:"final_analysis" yaml:"final_analysis"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`

	// Stages that degraded to defaults, surfaced as incomplete sections.
	Degraded []DegradedStage `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

// MarkDegraded records that a stage fell back to its default record.
func (r *Report) MarkDegraded(stage, reason string) {
	r.Degraded = append(r.Degraded, DegradedStage{Stage: stage, Reason: reason})
}

// IsDegraded reports whether the named stage degraded.
func (r *Report) IsDegraded(stage string) bool {
	for _, d := range r.Degraded {
		if d.Stage == stage {
			return true
		}
	}
	return false
}
