package wikipedia

// SummaryAPIResponse is the top-level struct for an extracts query.
type SummaryAPIResponse struct {
	Query SummaryQuery `json:"query"`
}

// SummaryQuery contains the pages map from an extracts query.
type SummaryQuery struct {
	Pages map[string]SummaryPage `json:"pages"`
}

// SummaryPage is a single page with its plain-text extract and canonical URL.
// Missing is present (as an empty string) when no page matches the title;
// PageProps carries the disambiguation marker.
type SummaryPage struct {
	PageID    int       `json:"pageid"`
	Title     string    `json:"title"`
	Missing   *string   `json:"missing,omitempty"`
	Extract   string    `json:"extract"`
	FullURL   string    `json:"fullurl"`
	PageProps PageProps `json:"pageprops"`
}

// PageProps holds the page properties relevant to classification.
type PageProps struct {
	Disambiguation *string `json:"disambiguation,omitempty"`
}
