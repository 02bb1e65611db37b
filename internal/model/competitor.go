package model

// Competitor describes one competing company identified during research.
type Competitor struct {
	Name          string   `json:"name" yaml:"name"`
	Website       string   `json:"website" yaml:"website"`
	Description   string   `json:"description" yaml:"description"`
	FundingStage  string   `json:"funding_stage" yaml:"funding_stage"`
	FundingAmount string   `json:"funding_amount" yaml:"funding_amount"`
	BusinessModel string   `json:"business_model" yaml:"business_model"`
	KeyFeatures   []string `json:"key_features" yaml:"key_features"`
	Strengths     []string `json:"strengths" yaml:"strengths"`
	Weaknesses    []string `json:"weaknesses" yaml:"weaknesses"`
	PricingModel  string   `json:"pricing_model" yaml:"pricing_model"`
}
