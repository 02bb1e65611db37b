package pipeline

import "github.com/venturelens/venturelens/internal/config"

// Built-in prompt templates. User templates are fmt.Sprintf formats; the
// stage methods document the verbs they fill. Any field set in the config
// [prompts] table replaces its default.

const defaultMarketResearchSystem = `You are a market research analyst specializing in startup ecosystems and emerging business opportunities.
Focus on identifying market size, growth trends, target demographics, and market dynamics.`

// verbs: idea, research content
const defaultMarketResearchUser = `Startup Idea: %s
Market Research Content: %s

Based on this market research content, analyze the market opportunity for the startup idea.

Focus on:
- Market size and growth potential
- Target audience demographics and behavior
- Current market trends and future projections
- Barriers to entry and regulatory landscape

Respond with a single JSON object:
{
  "market_size": "string",
  "growth_rate": "string",
  "target_audience": ["string"],
  "market_trends": ["string"],
  "barriers_to_entry": ["string"],
  "regulatory_considerations": ["string"]
}

Provide specific data points and statistics where available. Use "" or [] for
fields the content does not support.`

const defaultCompetitorSystem = `You are a competitive intelligence analyst. Analyze competitors, their business models,
funding, strengths, weaknesses, and market positioning.`

// verbs: idea, competitor name, competitor content
const defaultCompetitorUser = `Startup Idea: %s
Competitor: %s
Competitor Information: %s

Analyze this competitor in relation to the startup idea.

Respond with a single JSON object:
{
  "description": "string",
  "funding_stage": "Pre-seed | Seed | Series A/B/C | Public | string",
  "funding_amount": "string",
  "business_model": "B2B | B2C | SaaS | Marketplace | string",
  "key_features": ["string"],
  "strengths": ["string"],
  "weaknesses": ["string"],
  "pricing_model": "string"
}

Focus on information relevant to understanding their market position.`

const defaultSocialSystem = `You are a social media analyst and trend researcher. Identify public sentiment,
discussions, and emerging trends related to business ideas and market needs.`

// verbs: idea, social content
const defaultSocialUser = `Startup Idea: %s
Social Media & Discussion Content: %s

Summarize social trends and sentiment related to this startup idea. Look for
public interest and demand signals, common pain points, existing solutions
people discuss, and sentiment toward similar products. Provide insights on
market timing and customer validation opportunities. Answer in plain prose,
a few short paragraphs.`

const defaultViabilitySystem = `You are a startup advisor and investor with expertise in evaluating business ideas.
Assess viability based on market opportunity, competition, execution difficulty, and business model.`

// verbs: idea, market summary, competitor summary, social summary
const defaultViabilityUser = `Startup Idea: %s

Market Research Summary:
%s

Competitor Analysis Summary:
%s

Social Trends & Sentiment:
%s

Provide a comprehensive viability assessment as a single JSON object:
{
  "viability_score": 1-10,
  "market_opportunity": "string",
  "competitive_advantage": ["string"],
  "potential_challenges": ["string"],
  "monetization_strategies": ["string"],
  "required_resources": ["string"],
  "time_to_market": "string",
  "risk_assessment": "Low | Medium | High"
}

Be realistic but constructive in your assessment.`

const defaultRecommendationSystem = `You are a startup mentor providing actionable advice to entrepreneurs.
Synthesize research findings into clear, practical recommendations.`

// verbs: idea, full analysis
const defaultRecommendationUser = `Startup Idea: %s

Complete Analysis:
%s

Provide final recommendations (keep to 4-5 key points):

1. GO/NO-GO decision with brief reasoning
2. If GO: Top 3 immediate next steps
3. Key success factors to focus on
4. Major risks to monitor and mitigate
5. Alternative pivots or variations to consider

Number each recommendation. Keep recommendations specific, actionable, and
realistic. Aim for clarity over comprehensiveness.`

// resolvePrompts fills empty fields with the built-in defaults.
func resolvePrompts(p config.Prompts) config.Prompts {
	def := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	def(&p.MarketResearchSystem, defaultMarketResearchSystem)
	def(&p.MarketResearchUser, defaultMarketResearchUser)
	def(&p.CompetitorSystem, defaultCompetitorSystem)
	def(&p.CompetitorUser, defaultCompetitorUser)
	def(&p.SocialSystem, defaultSocialSystem)
	def(&p.SocialUser, defaultSocialUser)
	def(&p.ViabilitySystem, defaultViabilitySystem)
	def(&p.ViabilityUser, defaultViabilityUser)
	def(&p.RecommendationSystem, defaultRecommendationSystem)
	def(&p.RecommendationUser, defaultRecommendationUser)
	return p
}
