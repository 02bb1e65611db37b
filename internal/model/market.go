package model

// MarketAnalysis is the structured output of the market research stage.
type MarketAnalysis struct {
	MarketSize               string   `json:"market_size" yaml:"market_size"`
	GrowthRate               string   `json:"growth_rate" yaml:"growth_rate"`
	TargetAudience           []string `json:"target_audience" yaml:"target_audience"`
	MarketTrends             []string `json:"market_trends" yaml:"market_trends"`
	BarriersToEntry          []string `json:"barriers_to_entry" yaml:"barriers_to_entry"`
	RegulatoryConsiderations []string `json:"regulatory_considerations" yaml:"regulatory_considerations"`
}

// IsZero reports whether the analysis carries no data, i.e. the stage
// degraded to its default record.
func (m MarketAnalysis) IsZero() bool {
	return m.MarketSize == "" && m.GrowthRate == "" &&
		len(m.TargetAudience) == 0 && len(m.MarketTrends) == 0 &&
		len(m.BarriersToEntry) == 0 && len(m.RegulatoryConsiderations) == 0
}
