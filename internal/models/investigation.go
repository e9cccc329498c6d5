package models

// SearchResult is a single organic web-search hit, surfaced to the client
// for transparency alongside the verdict derived from it.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// FactCheckResult holds the outcome of the title fact-check branch.
type FactCheckResult struct {
	Query           string         `json:"query"`
	Results         []SearchResult `json:"results"`
	Verdict         string         `json:"verdict"`
	CredibleSources int            `json:"credibleSources"`
}

// ChannelReputation holds the outcome of the channel-reputation branch.
type ChannelReputation struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Verdict string         `json:"verdict"`
	Signals []string       `json:"signals"`
}

// Investigation bundles both branches. Absent from a response when search
// credentials are not configured.
type Investigation struct {
	FactCheck         FactCheckResult   `json:"factCheck"`
	ChannelReputation ChannelReputation `json:"channelReputation"`
}
