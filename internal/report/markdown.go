package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/venturelens/venturelens/internal/model"
)

// Markdown renders the report as a markdown document with aligned tables.
func Markdown(r *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Startup Idea Analysis: %s\n\n", r.Idea)
	fmt.Fprintf(&b, "*Report `%s`, generated %s*\n\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Executive Summary\n\n")
	score := "not assessed"
	if r.Viability.Score > 0 {
		score = fmt.Sprintf("%d/10", r.Viability.Score)
	}
	b.WriteString(table(
		[]string{"Metric", "Value"},
		[][]string{
			{"Viability Score", score},
			{"Risk Level", valueOr(r.Viability.RiskAssessment, "n/a")},
			{"Competitors Identified", fmt.Sprintf("%d", len(r.Competitors))},
			{"Market Size", valueOr(r.Market.MarketSize, "n/a")},
			{"Growth Rate", valueOr(r.Market.GrowthRate, "n/a")},
		},
	))
	b.WriteString("\n")

	b.WriteString("## Market Analysis\n\n")
	if r.IsDegraded(model.StageMarketResearch) || r.Market.IsZero() {
		b.WriteString("_Market research was incomplete for this run._\n\n")
	} else {
		mdList(&b, "Target audience", r.Market.TargetAudience)
		mdList(&b, "Market trends", r.Market.MarketTrends)
		mdList(&b, "Barriers to entry", r.Market.BarriersToEntry)
		mdList(&b, "Regulatory considerations", r.Market.RegulatoryConsiderations)
	}

	b.WriteString("## Competitors\n\n")
	switch {
	case r.IsDegraded(model.StageCompetitorAnalysis):
		b.WriteString("_Competitor analysis was incomplete for this run._\n\n")
	case len(r.Competitors) == 0:
		b.WriteString("No direct competitors identified.\n\n")
	default:
		rows := make([][]string, 0, len(r.Competitors))
		for _, c := range r.Competitors {
			rows = append(rows, []string{
				c.Name,
				valueOr(c.FundingStage, "n/a"),
				valueOr(c.BusinessModel, "n/a"),
				valueOr(c.PricingModel, "n/a"),
			})
		}
		b.WriteString(table([]string{"Company", "Funding", "Model", "Pricing"}, rows))
		b.WriteString("\n")
		for _, c := range r.Competitors {
			if c.Description == "" {
				continue
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", c.Name, c.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Social Trends\n\n")
	if r.IsDegraded(model.StageSocialTrends) {
		b.WriteString("_Social trend analysis was incomplete for this run._\n\n")
	} else {
		s := r.Social.Sentiment
		fmt.Fprintf(&b, "Source: %s. Sentiment: **%s** (%.0f%% positive, %.0f%% negative, %.0f%% neutral).\n\n",
			sourceLabel(r.Social.Source), s.Label(), s.Positive*100, s.Negative*100, s.Neutral*100)
		if r.Social.Summary != "" {
			b.WriteString(strings.TrimSpace(r.Social.Summary))
			b.WriteString("\n\n")
		}
	}

	b.WriteString("## Viability\n\n")
	if r.IsDegraded(model.StageViability) || r.Viability.Score == 0 {
		b.WriteString("_Viability assessment was incomplete for this run._\n\n")
	} else {
		if r.Viability.MarketOpportunity != "" {
			fmt.Fprintf(&b, "%s\n\n", r.Viability.MarketOpportunity)
		}
		mdList(&b, "Competitive advantages", r.Viability.CompetitiveAdvantage)
		mdList(&b, "Potential challenges", r.Viability.PotentialChallenges)
		mdList(&b, "Monetization strategies", r.Viability.MonetizationStrategies)
		if r.Viability.TimeToMarket != "" {
			fmt.Fprintf(&b, "Estimated time to market: %s.\n\n", r.Viability.TimeToMarket)
		}
	}

	b.WriteString("## Recommendations\n\n")
	if r.FinalAnalysis != "" {
		b.WriteString(strings.TrimSpace(r.FinalAnalysis))
		b.WriteString("\n\n")
	} else {
		b.WriteString("_No recommendations were generated for this run._\n\n")
	}

	if len(r.Degraded) > 0 {
		b.WriteString("## Notes\n\n")
		for _, d := range r.Degraded {
			fmt.Fprintf(&b, "- %s stage incomplete: %s\n", stageTitle(d.Stage), d.Reason)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func mdList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// table renders a markdown table with columns padded to their display width
// so the source stays readable alongside the rendered output.
func table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range header {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for i := range header {
		b.WriteString(strings.Repeat("-", widths[i]+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
