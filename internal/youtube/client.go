package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"baitcheck/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound is returned when the Data API has no item for the
// requested video identifier.
var ErrVideoNotFound = errors.New("video not found")

// maxComments bounds the top-relevance comment sample per video.
const maxComments = 10

// Client fetches video metadata through the YouTube Data API v3 using an
// API key. All lookups are read-only and request-scoped.
type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchMetadata retrieves snippet, content details and statistics for one
// video, then enriches the result with the channel subscriber count and a
// sample of top comments. The secondary lookups degrade gracefully: a failed
// channel lookup leaves SubscriberCount nil, a failed comment lookup leaves
// TopComments empty. Only the primary video lookup is fatal.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	call := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, ErrVideoNotFound)
	}

	item := resp.Items[0]
	meta := &models.VideoMetadata{
		ID:           videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		ChannelID:    item.Snippet.ChannelId,
		Tags:         item.Snippet.Tags,
		Thumbnail:    bestThumbnail(item.Snippet.Thumbnails),
		Chapters:     ParseChapters(item.Snippet.Description),
	}

	if item.ContentDetails != nil {
		meta.Duration = item.ContentDetails.Duration
		meta.DurationDisplay = FormatDuration(item.ContentDetails.Duration)
	}

	if item.Statistics != nil {
		meta.ViewCount = item.Statistics.ViewCount
		meta.LikeCount = item.Statistics.LikeCount
		meta.CommentCount = item.Statistics.CommentCount
	}

	if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		meta.PublishedAt = publishedAt
	}

	if subs, err := c.fetchSubscriberCount(ctx, meta.ChannelID); err != nil {
		log.Printf("Warning: failed to fetch subscriber count for channel %s: %v", meta.ChannelID, err)
	} else {
		meta.SubscriberCount = subs
	}

	comments, err := c.fetchTopComments(ctx, videoID)
	if err != nil {
		log.Printf("Warning: failed to fetch comments for video %s: %v", videoID, err)
	} else {
		meta.TopComments = comments
	}

	return meta, nil
}

func (c *Client) fetchSubscriberCount(ctx context.Context, channelID string) (*uint64, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is empty")
	}

	resp, err := c.service.Channels.List([]string{"statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 || resp.Items[0].Statistics == nil {
		return nil, fmt.Errorf("no statistics for channel %s", channelID)
	}
	if resp.Items[0].Statistics.HiddenSubscriberCount {
		return nil, fmt.Errorf("subscriber count hidden for channel %s", channelID)
	}

	count := resp.Items[0].Statistics.SubscriberCount
	return &count, nil
}

func (c *Client) fetchTopComments(ctx context.Context, videoID string) ([]string, error) {
	resp, err := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		Order("relevance").
		MaxResults(maxComments).
		TextFormat("plainText").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var comments []string
	for _, thread := range resp.Items {
		if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil || thread.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		comments = append(comments, thread.Snippet.TopLevelComment.Snippet.TextDisplay)
	}
	return comments, nil
}

func bestThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{details.Maxres, details.High, details.Medium, details.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
