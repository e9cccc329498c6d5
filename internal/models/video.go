package models

import "time"

// Chapter is one timestamped section parsed from a video description.
type Chapter struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

// VideoMetadata is everything fetched about a video for one analysis run.
// It is request-scoped and never persisted.
type VideoMetadata struct {
	ID              string
	Title           string
	Description     string
	ChannelTitle    string
	ChannelID       string
	Tags            []string
	PublishedAt     time.Time
	Duration        string // raw ISO-8601, e.g. "PT5M30S"
	DurationDisplay string // "5:30"
	ViewCount       uint64
	LikeCount       uint64
	CommentCount    uint64
	Thumbnail       string
	SubscriberCount *uint64 // nil when the channel lookup failed
	Chapters        []Chapter
	TopComments     []string
}

// VideoInfo is the display subset of metadata returned to the client.
type VideoInfo struct {
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	ChannelName string `json:"channelName"`
	Description string `json:"description,omitempty"`
}

// VideoDetails carries formatted statistics for the results dashboard.
type VideoDetails struct {
	ViewCount       string    `json:"viewCount"`
	LikeCount       string    `json:"likeCount"`
	CommentCount    string    `json:"commentCount"`
	SubscriberCount string    `json:"subscriberCount,omitempty"`
	PublishedAt     string    `json:"publishedAt"`
	Duration        string    `json:"duration"`
	Tags            []string  `json:"tags,omitempty"`
	Chapters        []Chapter `json:"chapters,omitempty"`
	TopComments     []string  `json:"topComments,omitempty"`
}

// VideoPreview is the credential-free oEmbed lookup result.
type VideoPreview struct {
	Title       string `json:"title"`
	ChannelName string `json:"channelName"`
	Thumbnail   string `json:"thumbnail"`
}
