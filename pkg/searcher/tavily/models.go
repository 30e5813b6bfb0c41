package tavily

type SearchRequest struct {
	Query string `json:"query"`

	Topic       string `json:"topic,omitempty"`
	SearchDepth string `json:"search_depth,omitempty"`

	MaxResults int `json:"max_results,omitempty"`

	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	URL   string `json:"url"`
	Title string `json:"title"`

	Content string `json:"content"`
}
