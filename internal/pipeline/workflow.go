// Package pipeline runs the five-stage startup research workflow: market
// research, competitor analysis, social trends, viability assessment, and
// final recommendations. Stages execute strictly in order over a shared
// report; a failed stage degrades to its default record and the run
// continues.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venturelens/venturelens/internal/config"
	"github.com/venturelens/venturelens/internal/llm"
	"github.com/venturelens/venturelens/internal/model"
	"github.com/venturelens/venturelens/internal/tools"
)

const maxCompetitors = 5

// Workflow holds the collaborators one pipeline run needs. A Workflow is
// safe to reuse across requests; each Run builds its own report.
type Workflow struct {
	llm     llm.Client
	tools   *tools.Registry
	prompts config.Prompts
	logger  *slog.Logger
}

func New(client llm.Client, registry *tools.Registry, prompts config.Prompts, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		llm:     client,
		tools:   registry,
		prompts: resolvePrompts(prompts),
		logger:  logger,
	}
}

// Run executes the full pipeline for one idea. The returned report always
// has every field group populated, with defaults where a stage degraded.
// The only errors are an empty idea and a context already cancelled.
func (w *Workflow) Run(ctx context.Context, idea string) (*model.Report, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, fmt.Errorf("startup idea must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &model.Report{
		ID:        uuid.New().String(),
		Idea:      idea,
		CreatedAt: time.Now().UTC(),
	}

	w.logger.Info("starting startup analysis", "id", report.ID, "idea", idea)

	w.marketResearch(ctx, report)
	w.competitorAnalysis(ctx, report)
	w.socialTrends(ctx, report)
	w.viabilityAssessment(ctx, report)
	w.finalRecommendations(ctx, report)

	w.logger.Info("startup analysis completed",
		"id", report.ID, "degraded_stages", len(report.Degraded))
	return report, nil
}

// degrade records a stage failure and logs it.
func (w *Workflow) degrade(report *model.Report, stage string, err error) {
	w.logger.Warn("stage degraded to default", "stage", stage, "error", err)
	report.MarkDegraded(stage, err.Error())
}

// search runs the serp search tool and decodes its payload.
func (w *Workflow) search(ctx context.Context, query string, num int) (*model.SearchResponse, error) {
	raw, err := w.tools.Call(ctx, "search", map[string]any{
		"query":       query,
		"num_results": num,
	})
	if err != nil {
		return nil, err
	}
	var resp model.SearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("search tool error: %s", resp.Error)
	}
	return &resp, nil
}

// callOptional runs a tool that may not be registered; both absence and
// failure yield an empty string.
func (w *Workflow) callOptional(ctx context.Context, name string, args map[string]any) string {
	if _, ok := w.tools.Get(name); !ok {
		return ""
	}
	out, err := w.tools.Call(ctx, name, args)
	if err != nil {
		w.logger.Debug("optional tool failed", "tool", name, "error", err)
		return ""
	}
	return out
}

// marketResearch is stage 1: web (and market data) research condensed by
// the LLM into a MarketAnalysis record.
func (w *Workflow) marketResearch(ctx context.Context, report *model.Report) {
	queries := []string{
		report.Idea + " market size trends",
		report.Idea + " industry analysis report",
		report.Idea + " target audience demographics",
	}

	var content strings.Builder
	var searchErr error
	for _, q := range queries {
		resp, err := w.search(ctx, q, 3)
		if err != nil {
			searchErr = err
			continue
		}
		report.SearchResults = append(report.SearchResults, resp.Results...)
		for _, r := range resp.Results {
			content.WriteString(r.Title)
			content.WriteString(" ")
			content.WriteString(r.Snippet)
			content.WriteString("\n")
		}
	}

	// Recent headlines and public-market context sharpen the analysis but
	// are never required.
	if news := w.callOptional(ctx, "search_news", map[string]any{
		"query": report.Idea, "num_results": 3,
	}); news != "" {
		var nr model.NewsResponse
		if json.Unmarshal([]byte(news), &nr) == nil {
			for _, a := range nr.NewsResults {
				content.WriteString(a.Title)
				content.WriteString(" ")
				content.WriteString(a.Snippet)
				content.WriteString("\n")
			}
		}
	}
	if market := w.callOptional(ctx, "get_market_size", map[string]any{
		"industry": report.Idea,
	}); market != "" {
		content.WriteString(market)
		content.WriteString("\n")
	}
	if growth := w.callOptional(ctx, "get_growth_trends", map[string]any{
		"industry": report.Idea,
	}); growth != "" {
		content.WriteString(growth)
		content.WriteString("\n")
	}

	if content.Len() == 0 {
		if searchErr == nil {
			searchErr = fmt.Errorf("no market research content found")
		}
		w.degrade(report, model.StageMarketResearch, searchErr)
		return
	}

	prompt := fmt.Sprintf(w.prompts.MarketResearchUser, report.Idea, content.String())
	response, err := w.llm.Generate(ctx, w.prompts.MarketResearchSystem, prompt)
	if err != nil {
		w.degrade(report, model.StageMarketResearch, fmt.Errorf("market analysis generation: %w", err))
		return
	}

	analysis, err := llm.ParseJSON[model.MarketAnalysis](response)
	if err != nil {
		w.degrade(report, model.StageMarketResearch, fmt.Errorf("market analysis parse: %w", err))
		return
	}

	report.Market = analysis
	w.logger.Info("market analysis completed", "id", report.ID)
}

// companyKeywords mark search titles that likely name a company.
var companyKeywords = []string{"company", "startup", "platform", "service"}

// competitorAnalysis is stage 2: identify competitor candidates from web
// search and enrich each with an LLM profile.
func (w *Workflow) competitorAnalysis(ctx context.Context, report *model.Report) {
	queries := []string{
		report.Idea + " competitors alternatives",
		report.Idea + " similar companies startups",
		report.Idea + " existing solutions market leaders",
	}

	var candidates []competitorCandidate
	var searchErr error
	searchesOK := 0
	for _, q := range queries {
		resp, err := w.search(ctx, q, 5)
		if err != nil {
			searchErr = err
			continue
		}
		searchesOK++
		for _, r := range resp.Results {
			lower := strings.ToLower(r.Title)
			matched := false
			for _, kw := range companyKeywords {
				if strings.Contains(lower, kw) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			candidates = append(candidates, competitorCandidate{
				Name:    candidateName(r.Title),
				Website: r.Link,
				Content: r.Title + " " + r.Snippet,
			})
		}
	}

	if searchesOK == 0 {
		if searchErr == nil {
			searchErr = fmt.Errorf("no competitor searches succeeded")
		}
		w.degrade(report, model.StageCompetitorAnalysis, searchErr)
		return
	}

	candidates = dedupeCandidates(candidates)

	for _, c := range candidates {
		if len(report.Competitors) >= maxCompetitors {
			break
		}

		content := c.Content
		if fin := w.callOptional(ctx, "get_competitor_financials", map[string]any{
			"company_name": c.Name,
		}); fin != "" {
			content += "\n" + fin
		}
		content = truncate(content, 2000)

		prompt := fmt.Sprintf(w.prompts.CompetitorUser, report.Idea, c.Name, content)
		response, err := w.llm.Generate(ctx, w.prompts.CompetitorSystem, prompt)
		if err != nil {
			w.logger.Warn("competitor enrichment failed", "competitor", c.Name, "error", err)
			continue
		}

		competitor, err := llm.ParseJSON[model.Competitor](response)
		if err != nil {
			w.logger.Warn("competitor profile parse failed", "competitor", c.Name, "error", err)
			continue
		}
		competitor.Name = c.Name
		competitor.Website = c.Website
		report.Competitors = append(report.Competitors, competitor)
	}

	w.logger.Info("competitor analysis completed",
		"id", report.ID, "competitors", len(report.Competitors))
}

// socialTrends is stage 3: platform trends via the analyze_trends tool,
// falling back to plain web search plus local sentiment scoring.
func (w *Workflow) socialTrends(ctx context.Context, report *model.Report) {
	raw, err := w.tools.Call(ctx, "analyze_trends", map[string]any{
		"topic":     report.Idea,
		"platforms": []string{"reddit", "twitter"},
	})
	if err == nil {
		var trends model.SocialTrends
		jsonErr := json.Unmarshal([]byte(raw), &trends)
		if jsonErr == nil {
			report.Social = trends
			w.logger.Info("social trends analysis completed", "id", report.ID, "source", trends.Source)
			return
		}
		err = fmt.Errorf("parsing trends payload: %w", jsonErr)
	}
	w.logger.Warn("trends tool unavailable, falling back to web search", "error", err)

	queries := []string{
		report.Idea + " reddit discussion opinions",
		report.Idea + " social media trends sentiment",
	}

	var content strings.Builder
	for _, q := range queries {
		resp, searchErr := w.search(ctx, q, 3)
		if searchErr != nil {
			continue
		}
		for _, r := range resp.Results {
			content.WriteString(r.Title)
			content.WriteString(" ")
			content.WriteString(r.Snippet)
			content.WriteString("\n")
		}
	}

	if content.Len() == 0 {
		w.degrade(report, model.StageSocialTrends, fmt.Errorf("trends tool and web fallback both failed: %w", err))
		return
	}

	summary := truncate(content.String(), 1500)
	prompt := fmt.Sprintf(w.prompts.SocialUser, report.Idea, summary)
	if response, llmErr := w.llm.Generate(ctx, w.prompts.SocialSystem, prompt); llmErr == nil {
		summary = response
	}

	report.Social = model.SocialTrends{
		Source:    "web_search",
		Summary:   summary,
		Sentiment: tools.AnalyzeSentiment(content.String()),
	}
	w.logger.Info("social trends analysis completed", "id", report.ID, "source", "web_search")
}

// viabilityAssessment is stage 4: score the idea from everything gathered
// so far. Reads earlier field groups, never mutates them.
func (w *Workflow) viabilityAssessment(ctx context.Context, report *model.Report) {
	var market string
	if !report.Market.IsZero() {
		market = fmt.Sprintf(
			"Market Size: %s\nGrowth Rate: %s\nTarget Audience: %s\nMarket Trends: %s\nBarriers: %s",
			orUnknown(report.Market.MarketSize),
			orUnknown(report.Market.GrowthRate),
			strings.Join(report.Market.TargetAudience, ", "),
			strings.Join(report.Market.MarketTrends, ", "),
			strings.Join(report.Market.BarriersToEntry, ", "),
		)
	}

	var competitors string
	if len(report.Competitors) > 0 {
		names := make([]string, 0, len(report.Competitors))
		for _, c := range report.Competitors {
			names = append(names, c.Name)
		}
		competitors = "Main competitors: " + strings.Join(names, ", ")
	}

	social := truncate(report.Social.Summary, 500)

	prompt := fmt.Sprintf(w.prompts.ViabilityUser, report.Idea, market, competitors, social)
	response, err := w.llm.Generate(ctx, w.prompts.ViabilitySystem, prompt)
	if err != nil {
		w.degrade(report, model.StageViability, fmt.Errorf("viability generation: %w", err))
		return
	}

	viability, err := llm.ParseJSON[model.Viability](response)
	if err != nil {
		w.degrade(report, model.StageViability, fmt.Errorf("viability parse: %w", err))
		return
	}
	if err := viability.Validate(); err != nil {
		w.degrade(report, model.StageViability, fmt.Errorf("viability validation: %w", err))
		return
	}

	report.Viability = viability
	w.logger.Info("viability assessment completed", "id", report.ID, "score", viability.Score)
}

// finalRecommendations is stage 5: synthesize everything into prose advice
// plus the numbered takeaways extracted from it.
func (w *Workflow) finalRecommendations(ctx context.Context, report *model.Report) {
	score := "N/A"
	if report.Viability.Score > 0 {
		score = fmt.Sprintf("%d", report.Viability.Score)
	}
	full := fmt.Sprintf(
		"Startup Idea: %s\nMarket Analysis: %s market, growth %s\nCompetitors Found: %d\nViability Score: %s/10\nSocial Trends: %s",
		report.Idea,
		orUnknown(report.Market.MarketSize),
		orUnknown(report.Market.GrowthRate),
		len(report.Competitors),
		score,
		truncate(report.Social.Summary, 300),
	)

	prompt := fmt.Sprintf(w.prompts.RecommendationUser, report.Idea, full)
	response, err := w.llm.Generate(ctx, w.prompts.RecommendationSystem, prompt)
	if err != nil {
		report.FinalAnalysis = "Unable to generate final recommendations due to processing error."
		w.degrade(report, model.StageRecommendations, fmt.Errorf("recommendation generation: %w", err))
		return
	}

	report.FinalAnalysis = response
	report.Recommendations = extractNumbered(response)
	w.logger.Info("final recommendations generated",
		"id", report.ID, "recommendations", len(report.Recommendations))
}

// extractNumbered pulls "1." through "9." prefixed lines out of prose.
func extractNumbered(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) >= 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
			out = append(out, line)
		}
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
