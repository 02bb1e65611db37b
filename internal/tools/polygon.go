package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/venturelens/venturelens/internal/httputil"
)

// polygonBaseURL is the Polygon.io API root. Declared as a var so tests can
// substitute an httptest server.
var polygonBaseURL = "https://api.polygon.io"

// PolygonClient wraps the Polygon.io reference and aggregates endpoints.
type PolygonClient struct {
	APIKey string
	HTTP   *http.Client
}

type polygonTicker struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

type polygonTickersResponse struct {
	Results []polygonTicker `json:"results"`
}

type polygonTickerDetails struct {
	Results struct {
		Name           string  `json:"name"`
		MarketCap      float64 `json:"market_cap"`
		TotalEmployees int     `json:"total_employees"`
		SicDescription string  `json:"sic_description"`
		HomepageURL    string  `json:"homepage_url"`
		Description    string  `json:"description"`
	} `json:"results"`
}

type polygonAggsResponse struct {
	Results []struct {
		Close  float64 `json:"c"`
		Volume float64 `json:"v"`
	} `json:"results"`
}

type polygonFinancialsResponse struct {
	Results []struct {
		EndDate    string `json:"end_date"`
		Financials struct {
			IncomeStatement struct {
				Revenues struct {
					Value float64 `json:"value"`
				} `json:"revenues"`
			} `json:"income_statement"`
		} `json:"financials"`
	} `json:"results"`
}

func (c *PolygonClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, polygonBaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return fmt.Errorf("polygon request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("polygon returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing polygon response: %w", err)
	}
	return nil
}

// SearchTickers looks up active stock tickers by company or industry name.
func (c *PolygonClient) SearchTickers(ctx context.Context, query string, limit int) ([]polygonTicker, error) {
	var out polygonTickersResponse
	err := c.get(ctx, "/v3/reference/tickers", url.Values{
		"search": {query},
		"market": {"stocks"},
		"active": {"true"},
		"limit":  {strconv.Itoa(limit)},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Results, nil
}

// TickerDetails fetches company reference data for a ticker.
func (c *PolygonClient) TickerDetails(ctx context.Context, ticker string) (*polygonTickerDetails, error) {
	var out polygonTickerDetails
	if err := c.get(ctx, "/v3/reference/tickers/"+ticker, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Aggregates fetches daily close prices for the trailing number of days.
func (c *PolygonClient) Aggregates(ctx context.Context, ticker string, days int) (*polygonAggsResponse, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/day/%s/%s",
		ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))

	var out polygonAggsResponse
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Financials fetches the last quarterly statements for a ticker.
func (c *PolygonClient) Financials(ctx context.Context, ticker string) (*polygonFinancialsResponse, error) {
	var out polygonFinancialsResponse
	err := c.get(ctx, "/vX/reference/financials", url.Values{
		"ticker": {ticker},
		"limit":  {"4"},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarketSizeTool estimates market size from the market caps of public
// companies matching an industry name.
type MarketSizeTool struct {
	Client *PolygonClient
}

func (t *MarketSizeTool) Name() string { return "get_market_size" }

func (t *MarketSizeTool) Description() string {
	return "Get market size information for a specific industry or sector"
}

func (t *MarketSizeTool) Call(ctx context.Context, args map[string]any) (string, error) {
	industry := stringArg(args, "industry", "")
	if industry == "" {
		return "", fmt.Errorf("industry parameter is required")
	}
	region := stringArg(args, "region", "Global")
	year := intArg(args, "year", time.Now().Year())

	tickers, err := t.Client.SearchTickers(ctx, industry, 10)
	if err != nil {
		return "", err
	}
	if len(tickers) == 0 {
		return fmt.Sprintf("No public companies found for industry: %s. Market data may be limited for this sector.", industry), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Market Size Analysis for %s (%s, %d):\n", industry, region, year)

	var totalMarketCap float64
	analyzed := 0
	for i, tk := range tickers {
		if i >= 5 {
			break
		}
		details, err := t.Client.TickerDetails(ctx, tk.Ticker)
		if err != nil || details.Results.MarketCap == 0 {
			continue
		}
		totalMarketCap += details.Results.MarketCap
		analyzed++

		fmt.Fprintf(&b, "\n%s (%s):\n", tk.Name, tk.Ticker)
		fmt.Fprintf(&b, "  - Market Cap: $%.0f\n", details.Results.MarketCap)
		desc := details.Results.Description
		if len(desc) > 100 {
			desc = desc[:100] + "..."
		}
		if desc != "" {
			fmt.Fprintf(&b, "  - Description: %s\n", desc)
		}
	}

	if analyzed > 0 {
		fmt.Fprintf(&b, "\nMarket Insights:\n")
		fmt.Fprintf(&b, "- Total Market Cap (Top %d companies): $%.0f\n", analyzed, totalMarketCap)
		fmt.Fprintf(&b, "- Average Market Cap: $%.0f\n", totalMarketCap/float64(analyzed))
		fmt.Fprintf(&b, "- Companies Analyzed: %d\n", analyzed)
		// Rough multiplier to account for private companies.
		fmt.Fprintf(&b, "- Estimated Total Addressable Market: $%.0f\n", totalMarketCap*2.5)
	} else {
		b.WriteString("\nLimited market data available for this industry.\n")
		b.WriteString("Consider researching private companies and market reports for more comprehensive analysis.\n")
	}

	return b.String(), nil
}

// GrowthTrendsTool summarizes sector growth from trailing stock performance.
type GrowthTrendsTool struct {
	Client *PolygonClient
}

func (t *GrowthTrendsTool) Name() string { return "get_growth_trends" }

func (t *GrowthTrendsTool) Description() string {
	return "Get market growth trends and projections"
}

var timeframeDays = map[string]int{
	"1-year":  365,
	"3-year":  1095,
	"5-year":  1825,
	"10-year": 3650,
}

func (t *GrowthTrendsTool) Call(ctx context.Context, args map[string]any) (string, error) {
	industry := stringArg(args, "industry", "")
	if industry == "" {
		return "", fmt.Errorf("industry parameter is required")
	}
	timeframe := stringArg(args, "timeframe", "5-year")
	days, ok := timeframeDays[timeframe]
	if !ok {
		days = 1825
	}
	// Free tier caps history at one year.
	if days > 365 {
		days = 365
	}

	tickers, err := t.Client.SearchTickers(ctx, industry, 5)
	if err != nil {
		return "", err
	}
	if len(tickers) == 0 {
		return fmt.Sprintf("No companies found for growth analysis: %s", industry), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Growth Trends Analysis for %s (%s outlook):\n", industry, timeframe)

	var totalGrowth float64
	withData := 0
	for i, tk := range tickers {
		if i >= 3 {
			break
		}
		aggs, err := t.Client.Aggregates(ctx, tk.Ticker, days)
		if err != nil || len(aggs.Results) < 2 {
			continue
		}
		startPrice := aggs.Results[0].Close
		endPrice := aggs.Results[len(aggs.Results)-1].Close
		if startPrice <= 0 {
			continue
		}
		growth := (endPrice - startPrice) / startPrice * 100
		totalGrowth += growth
		withData++

		fmt.Fprintf(&b, "\n%s (%s):\n", tk.Name, tk.Ticker)
		fmt.Fprintf(&b, "  - Price Growth (1-year): %.2f%%\n", growth)
		fmt.Fprintf(&b, "  - Start Price: $%.2f\n", startPrice)
		fmt.Fprintf(&b, "  - Current Price: $%.2f\n", endPrice)
	}

	if withData > 0 {
		avg := totalGrowth / float64(withData)
		fmt.Fprintf(&b, "\nSector Growth Trends:\n")
		fmt.Fprintf(&b, "- Average Stock Growth (1-year): %.2f%%\n", avg)
		fmt.Fprintf(&b, "- Companies Analyzed: %d\n", withData)

		var assessment string
		switch {
		case avg > 20:
			assessment = "High Growth - Strong sector momentum"
		case avg > 5:
			assessment = "Moderate Growth - Stable sector performance"
		case avg > 0:
			assessment = "Low Growth - Limited sector expansion"
		default:
			assessment = "Declining - Sector facing headwinds"
		}
		fmt.Fprintf(&b, "- Growth Assessment: %s\n", assessment)

		if timeframe != "1-year" {
			fmt.Fprintf(&b, "\nNote: Analysis limited to 1-year data. For %s trends, consider premium market data sources.\n", timeframe)
		}
	} else {
		b.WriteString("\nLimited growth data available for this industry.\n")
	}

	return b.String(), nil
}

// CompetitorFinancialsTool reports public-company financials for a named
// competitor, resolving the ticker by company name when needed.
type CompetitorFinancialsTool struct {
	Client *PolygonClient
}

func (t *CompetitorFinancialsTool) Name() string { return "get_competitor_financials" }

func (t *CompetitorFinancialsTool) Description() string {
	return "Get financial information about public companies in a sector"
}

func (t *CompetitorFinancialsTool) Call(ctx context.Context, args map[string]any) (string, error) {
	company := stringArg(args, "company_name", "")
	ticker := stringArg(args, "ticker", "")
	if company == "" && ticker == "" {
		return "", fmt.Errorf("either company_name or ticker is required")
	}

	if ticker == "" {
		results, err := t.Client.SearchTickers(ctx, company, 1)
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return fmt.Sprintf("Could not find ticker for company: %s", company), nil
		}
		ticker = results[0].Ticker
	}

	var b strings.Builder
	label := company
	if label == "" {
		label = ticker
	}
	fmt.Fprintf(&b, "Financial Analysis for %s (%s):\n", label, ticker)

	if details, err := t.Client.TickerDetails(ctx, ticker); err == nil {
		r := details.Results
		b.WriteString("\nCompany Overview:\n")
		fmt.Fprintf(&b, "- Name: %s\n", r.Name)
		if r.MarketCap > 0 {
			fmt.Fprintf(&b, "- Market Cap: $%.0f\n", r.MarketCap)
		}
		if r.TotalEmployees > 0 {
			fmt.Fprintf(&b, "- Employees: %d\n", r.TotalEmployees)
		}
		if r.SicDescription != "" {
			fmt.Fprintf(&b, "- Industry: %s\n", r.SicDescription)
		}
		if r.HomepageURL != "" {
			fmt.Fprintf(&b, "- Website: %s\n", r.HomepageURL)
		}
	}

	if fin, err := t.Client.Financials(ctx, ticker); err == nil && len(fin.Results) > 0 {
		b.WriteString("\nFinancial Metrics:\n")
		for i, r := range fin.Results {
			if i >= 2 {
				break
			}
			fmt.Fprintf(&b, "\nPeriod: %s\n", r.EndDate)
			if rev := r.Financials.IncomeStatement.Revenues.Value; rev > 0 {
				fmt.Fprintf(&b, "  - Revenue: $%.0f\n", rev)
			}
		}
	}

	if aggs, err := t.Client.Aggregates(ctx, ticker, 30); err == nil && len(aggs.Results) > 1 {
		startPrice := aggs.Results[0].Close
		current := aggs.Results[len(aggs.Results)-1]
		if startPrice > 0 {
			change := (current.Close - startPrice) / startPrice * 100
			b.WriteString("\nRecent Performance (30 days):\n")
			fmt.Fprintf(&b, "- Price Change: %.2f%%\n", change)
			fmt.Fprintf(&b, "- Current Price: $%.2f\n", current.Close)
			if current.Volume > 0 {
				fmt.Fprintf(&b, "- Volume: %.0f shares\n", current.Volume)
			}
		}
	}

	b.WriteString("\nNote: Analysis limited by API tier. For comprehensive financials, consider premium data sources.\n")
	return b.String(), nil
}
