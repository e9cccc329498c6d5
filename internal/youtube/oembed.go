package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"baitcheck/internal/models"
)

const defaultOEmbedURL = "https://www.youtube.com/oembed"

// OEmbedClient performs unauthenticated oEmbed lookups. It only yields the
// video title and channel name, but needs no API credential, which makes it
// usable for a lightweight preview before a full analysis.
type OEmbedClient struct {
	baseURL string
	client  *http.Client
}

func NewOEmbedClient() *OEmbedClient {
	return &OEmbedClient{
		baseURL: defaultOEmbedURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Lookup resolves a video identifier to its title and channel name via the
// public oEmbed endpoint.
func (o *OEmbedClient) Lookup(ctx context.Context, videoID string) (*models.VideoPreview, error) {
	lookupURL := fmt.Sprintf("%s?url=%s&format=json", o.baseURL, url.QueryEscape(WatchURL(videoID)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create oEmbed request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch oEmbed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oEmbed endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode oEmbed response: %w", err)
	}

	return &models.VideoPreview{
		Title:       payload.Title,
		ChannelName: payload.AuthorName,
		Thumbnail:   fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID),
	}, nil
}
