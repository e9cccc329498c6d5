package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"baitcheck/internal/models"

	"google.golang.org/genai"
)

// NotApplicable is the sentinel the query-derivation call returns when a
// title contains no verifiable factual claim. It signals "skip the
// fact-check search", not an error.
const NotApplicable = "not applicable"

// maxCredibleSources bounds the fact-check credibility count.
const maxCredibleSources = 5

// DeriveFactCheckQuery asks the model to extract one verifiable claim from
// the video title and turn it into a single web-search query. It returns
// NotApplicable when nothing in the title can be checked.
func (c *Client) DeriveFactCheckQuery(ctx context.Context, title string) (string, error) {
	prompt := fmt.Sprintf(`A YouTube video is titled: %q

If the title makes a factual claim that could be verified with a web search,
respond with exactly one search query that would check it. Respond with the
query text only, no quotes and no explanation.
If the title contains no checkable factual claim, respond with exactly:
not applicable`, title)

	text, err := c.generate(ctx, prompt, nil)
	if err != nil {
		return "", fmt.Errorf("query derivation failed: %w", err)
	}

	query := strings.Trim(strings.TrimSpace(text), `"`)
	if strings.EqualFold(query, NotApplicable) {
		return NotApplicable, nil
	}
	return query, nil
}

// SummarizeFactCheck turns fact-check search results into a verdict plus a
// count of sources judged credible.
func (c *Client) SummarizeFactCheck(ctx context.Context, title, query string, results []models.SearchResult) (string, int, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"verdict":         {Type: genai.TypeString, Description: "one-sentence fact-check verdict"},
			"credibleSources": {Type: genai.TypeInteger, Description: "number of credible sources supporting the claim, 0-5"},
		},
		Required: []string{"verdict", "credibleSources"},
	}

	prompt := fmt.Sprintf(`You are fact-checking the claim in a YouTube video title.

Title: %s
Search query used: %s

Search results:
%s

State in one sentence whether the search results support, contradict or fail
to address the title's claim, and count how many of the results are credible
sources for it.`, title, query, formatResults(results))

	text, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return "", 0, fmt.Errorf("fact-check summarization failed: %w", err)
	}

	var out struct {
		Verdict         string `json:"verdict"`
		CredibleSources int    `json:"credibleSources"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return "", 0, fmt.Errorf("failed to unmarshal fact-check summary %q: %w", text, err)
	}
	if out.Verdict == "" {
		return "", 0, fmt.Errorf("fact-check verdict was empty")
	}

	if out.CredibleSources < 0 {
		out.CredibleSources = 0
	} else if out.CredibleSources > maxCredibleSources {
		out.CredibleSources = maxCredibleSources
	}

	return out.Verdict, out.CredibleSources, nil
}

// SummarizeReputation turns channel-reputation search results into a verdict
// plus a list of named warning signals (prior controversy, clickbait
// accusations and the like).
func (c *Client) SummarizeReputation(ctx context.Context, channel, query string, results []models.SearchResult) (string, []string, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"verdict": {Type: genai.TypeString, Description: "one-sentence reputation verdict"},
			"signals": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "named warning signals found, empty when none",
			},
		},
		Required: []string{"verdict", "signals"},
	}

	prompt := fmt.Sprintf(`You are assessing the reputation of the YouTube channel %q.

Search query used: %s

Search results:
%s

State in one sentence what the results say about the channel's
trustworthiness, and list any warning signals they reveal (controversies,
clickbait accusations, fraud allegations, repeated criticism).`, channel, query, formatResults(results))

	text, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return "", nil, fmt.Errorf("reputation summarization failed: %w", err)
	}

	var out struct {
		Verdict string   `json:"verdict"`
		Signals []string `json:"signals"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal reputation summary %q: %w", text, err)
	}
	if out.Verdict == "" {
		return "", nil, fmt.Errorf("reputation verdict was empty")
	}

	return out.Verdict, out.Signals, nil
}

func formatResults(results []models.SearchResult) string {
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n   %s\n   %s\n", i+1, r.Title, r.Snippet, r.Link)
	}
	return b.String()
}
