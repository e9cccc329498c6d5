// Package search wraps the Google Programmable Search API for the
// investigation pipeline.
package search

import (
	"context"
	"fmt"

	"baitcheck/internal/models"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// maxResults caps organic hits per query.
const maxResults = 5

// Client issues keyed queries against a configured search engine scope,
// restricted to a single language.
type Client struct {
	service  *customsearch.Service
	engineID string
	language string
}

func NewClient(ctx context.Context, apiKey, engineID, language string) (*Client, error) {
	if apiKey == "" || engineID == "" {
		return nil, fmt.Errorf("search API key and engine ID are required")
	}
	if language == "" {
		language = "lang_en"
	}

	service, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &Client{
		service:  service,
		engineID: engineID,
		language: language,
	}, nil
}

// Search runs one query and maps the organic results. Each analysis request
// issues at most two searches, once each, with no retries.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	resp, err := c.service.Cse.List().
		Cx(c.engineID).
		Q(query).
		Num(maxResults).
		Lr(c.language).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", query, err)
	}

	var results []models.SearchResult
	for _, item := range resp.Items {
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}
	return results, nil
}
