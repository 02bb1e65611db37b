// Package report renders analysis reports for terminals, files, and the
// HTTP API: plain text, markdown, JSON, and YAML.
package report

import (
	"fmt"
	"strings"

	"github.com/venturelens/venturelens/internal/model"
)

const divider = "============================================================"

// Text renders the report as a plain-text document suitable for a terminal.
// Degraded stages render as an explicit incomplete-section note instead of
// being silently omitted.
func Text(r *model.Report) string {
	var b strings.Builder

	b.WriteString(divider + "\n")
	b.WriteString("STARTUP IDEA ANALYSIS REPORT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Idea: %s\n", r.Idea)
	fmt.Fprintf(&b, "Report ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.CreatedAt.Format("2006-01-02 15:04 UTC"))

	writeSummary(&b, r)
	writeMarket(&b, r)
	writeCompetitors(&b, r)
	writeSocial(&b, r)
	writeViability(&b, r)
	writeRecommendations(&b, r)

	if len(r.Degraded) > 0 {
		b.WriteString("NOTES\n")
		b.WriteString("-----\n")
		for _, d := range r.Degraded {
			fmt.Fprintf(&b, "- %s stage incomplete: %s\n", stageTitle(d.Stage), d.Reason)
		}
		b.WriteString("\n")
	}

	b.WriteString(divider + "\n")
	return b.String()
}

func writeSummary(b *strings.Builder, r *model.Report) {
	b.WriteString("EXECUTIVE SUMMARY\n")
	b.WriteString("-----------------\n")
	if r.Viability.Score > 0 {
		fmt.Fprintf(b, "Viability Score: %d/10\n", r.Viability.Score)
	} else {
		b.WriteString("Viability Score: not assessed\n")
	}
	if r.Viability.RiskAssessment != "" {
		fmt.Fprintf(b, "Risk Level: %s\n", r.Viability.RiskAssessment)
	}
	fmt.Fprintf(b, "Competitors Identified: %d\n", len(r.Competitors))
	if !r.Market.IsZero() && r.Market.MarketSize != "" {
		fmt.Fprintf(b, "Market Size: %s\n", r.Market.MarketSize)
	}
	b.WriteString("\n")
}

func writeMarket(b *strings.Builder, r *model.Report) {
	b.WriteString("MARKET ANALYSIS\n")
	b.WriteString("---------------\n")
	if r.IsDegraded(model.StageMarketResearch) || r.Market.IsZero() {
		b.WriteString("Market research was incomplete for this run.\n\n")
		return
	}
	fmt.Fprintf(b, "Market Size: %s\n", valueOr(r.Market.MarketSize, "Unknown"))
	fmt.Fprintf(b, "Growth Rate: %s\n", valueOr(r.Market.GrowthRate, "Unknown"))
	writeList(b, "Target Audience", r.Market.TargetAudience)
	writeList(b, "Market Trends", r.Market.MarketTrends)
	writeList(b, "Barriers to Entry", r.Market.BarriersToEntry)
	writeList(b, "Regulatory Considerations", r.Market.RegulatoryConsiderations)
	b.WriteString("\n")
}

func writeCompetitors(b *strings.Builder, r *model.Report) {
	b.WriteString("COMPETITOR ANALYSIS\n")
	b.WriteString("-------------------\n")
	if r.IsDegraded(model.StageCompetitorAnalysis) {
		b.WriteString("Competitor analysis was incomplete for this run.\n\n")
		return
	}
	if len(r.Competitors) == 0 {
		b.WriteString("No direct competitors identified.\n\n")
		return
	}
	for i, c := range r.Competitors {
		fmt.Fprintf(b, "%d. %s\n", i+1, c.Name)
		if c.Website != "" {
			fmt.Fprintf(b, "   Website: %s\n", c.Website)
		}
		if c.Description != "" {
			fmt.Fprintf(b, "   %s\n", c.Description)
		}
		if c.FundingStage != "" {
			fmt.Fprintf(b, "   Funding: %s", c.FundingStage)
			if c.FundingAmount != "" {
				fmt.Fprintf(b, " (%s)", c.FundingAmount)
			}
			b.WriteString("\n")
		}
		if c.BusinessModel != "" {
			fmt.Fprintf(b, "   Business Model: %s\n", c.BusinessModel)
		}
		if len(c.Strengths) > 0 {
			fmt.Fprintf(b, "   Strengths: %s\n", strings.Join(c.Strengths, "; "))
		}
		if len(c.Weaknesses) > 0 {
			fmt.Fprintf(b, "   Weaknesses: %s\n", strings.Join(c.Weaknesses, "; "))
		}
	}
	b.WriteString("\n")
}

func writeSocial(b *strings.Builder, r *model.Report) {
	b.WriteString("SOCIAL TRENDS & SENTIMENT\n")
	b.WriteString("-------------------------\n")
	if r.IsDegraded(model.StageSocialTrends) {
		b.WriteString("Social trend analysis was incomplete for this run.\n\n")
		return
	}
	fmt.Fprintf(b, "Source: %s\n", sourceLabel(r.Social.Source))
	if r.Social.PostsAnalyzed > 0 {
		fmt.Fprintf(b, "Posts Analyzed: %d\n", r.Social.PostsAnalyzed)
		fmt.Fprintf(b, "Average Engagement: %.1f\n", r.Social.AvgEngagement)
	}
	s := r.Social.Sentiment
	fmt.Fprintf(b, "Sentiment: %s (positive %.0f%%, negative %.0f%%, neutral %.0f%%)\n",
		s.Label(), s.Positive*100, s.Negative*100, s.Neutral*100)
	if r.Social.Summary != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(r.Social.Summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeViability(b *strings.Builder, r *model.Report) {
	b.WriteString("VIABILITY ASSESSMENT\n")
	b.WriteString("--------------------\n")
	if r.IsDegraded(model.StageViability) || r.Viability.Score == 0 {
		b.WriteString("Viability assessment was incomplete for this run.\n\n")
		return
	}
	fmt.Fprintf(b, "Score: %d/10\n", r.Viability.Score)
	fmt.Fprintf(b, "Risk: %s\n", valueOr(r.Viability.RiskAssessment, "Unknown"))
	if r.Viability.MarketOpportunity != "" {
		fmt.Fprintf(b, "Market Opportunity: %s\n", r.Viability.MarketOpportunity)
	}
	if r.Viability.TimeToMarket != "" {
		fmt.Fprintf(b, "Time to Market: %s\n", r.Viability.TimeToMarket)
	}
	writeList(b, "Competitive Advantages", r.Viability.CompetitiveAdvantage)
	writeList(b, "Potential Challenges", r.Viability.PotentialChallenges)
	writeList(b, "Monetization Strategies", r.Viability.MonetizationStrategies)
	writeList(b, "Required Resources", r.Viability.RequiredResources)
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, r *model.Report) {
	b.WriteString("RECOMMENDATIONS\n")
	b.WriteString("---------------\n")
	if r.FinalAnalysis != "" {
		b.WriteString(strings.TrimSpace(r.FinalAnalysis))
		b.WriteString("\n")
	} else {
		b.WriteString("No recommendations were generated for this run.\n")
	}
	if len(r.Recommendations) > 0 {
		b.WriteString("\nKey Takeaways:\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(b, "  %s\n", rec)
		}
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func sourceLabel(source string) string {
	switch source {
	case "social_trends_api":
		return "Social platform APIs (Reddit/Twitter)"
	case "web_search":
		return "Web search fallback"
	case "":
		return "Unavailable"
	}
	return source
}

func stageTitle(stage string) string {
	switch stage {
	case model.StageMarketResearch:
		return "Market research"
	case model.StageCompetitorAnalysis:
		return "Competitor analysis"
	case model.StageSocialTrends:
		return "Social trends"
	case model.StageViability:
		return "Viability assessment"
	case model.StageRecommendations:
		return "Recommendations"
	}
	return stage
}
