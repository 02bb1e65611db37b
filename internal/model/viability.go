package model

import "fmt"

// Risk levels accepted in Viability.RiskAssessment.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Viability is the structured output of the viability assessment stage.
// Score runs from 1 (very poor) to 10 (excellent opportunity); 0 means the
// stage degraded and no score was produced.
type Viability struct {
	Score                  int      `json:"viability_score" yaml:"viability_score"`
	MarketOpportunity      string   `json:"market_opportunity" yaml:"market_opportunity"`
	CompetitiveAdvantage   []string `json:"competitive_advantage" yaml:"competitive_advantage"`
	PotentialChallenges    []string `json:"potential_challenges" yaml:"potential_challenges"`
	MonetizationStrategies []string `json:"monetization_strategies" yaml:"monetization_strategies"`
	RequiredResources      []string `json:"required_resources" yaml:"required_resources"`
	TimeToMarket           string   `json:"time_to_market" yaml:"time_to_market"`
	RiskAssessment         string   `json:"risk_assessment" yaml:"risk_assessment"`
}

// Validate checks score bounds and the risk label. A zero score is allowed
// so degraded assessments pass through unchanged.
func (v Viability) Validate() error {
	if v.Score < 0 || v.Score > 10 {
		return fmt.Errorf("viability score %d out of range 0-10", v.Score)
	}
	switch v.RiskAssessment {
	case "", RiskLow, RiskMedium, RiskHigh:
		return nil
	}
	// LLMs often elaborate ("Medium - crowded market"); accept prefixed labels.
	for _, level := range []string{RiskLow, RiskMedium, RiskHigh} {
		if len(v.RiskAssessment) > len(level) && v.RiskAssessment[:len(level)] == level {
			return nil
		}
	}
	return fmt.Errorf("unknown risk assessment %q", v.RiskAssessment)
}
