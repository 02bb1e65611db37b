package model

// SearchResult is one organic web search result as returned by the serp
// tools. Field names mirror the tool's JSON payload.
type SearchResult struct {
	Position      int    `json:"position" yaml:"position"`
	Title         string `json:"title" yaml:"title"`
	Link          string `json:"link" yaml:"link"`
	Snippet       string `json:"snippet" yaml:"snippet"`
	DisplayedLink string `json:"displayed_link,omitempty" yaml:"displayed_link,omitempty"`
}

// SearchResponse is the envelope the serp search tool returns.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// NewsResult is one news article from the serp news tool.
type NewsResult struct {
	Position int    `json:"position" yaml:"position"`
	Title    string `json:"title" yaml:"title"`
	Link     string `json:"link" yaml:"link"`
	Snippet  string `json:"snippet" yaml:"snippet"`
	Date     string `json:"date" yaml:"date"`
	Source   string `json:"source" yaml:"source"`
}

// NewsResponse is the envelope the serp news tool returns.
type NewsResponse struct {
	NewsResults []NewsResult `json:"news_results"`
	Error       string       `json:"error,omitempty"`
}
