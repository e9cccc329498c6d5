// Package analyze composes the per-request pipeline: extract identifier,
// fetch metadata, optionally investigate, assemble the prompt and score.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"baitcheck/internal/ai"
	"baitcheck/internal/models"
	"baitcheck/internal/youtube"
)

// Pipeline failure classes. The HTTP layer maps these to status codes;
// anything else is an internal failure.
var (
	ErrInvalidURL       = errors.New("not a valid YouTube URL")
	ErrVideoUnavailable = errors.New("could not retrieve video information")
)

// MetadataFetcher retrieves everything known about one video.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)
}

// Investigator runs the optional fact-check/reputation sub-pipeline.
type Investigator interface {
	Run(ctx context.Context, title, channel string) (*models.Investigation, error)
}

// Scorer produces the validated clickbait verdict for an assembled prompt.
type Scorer interface {
	Score(ctx context.Context, prompt string) (*models.Verdict, error)
}

// Service holds the pipeline dependencies for the lifetime of the process.
// Every Analyze call is otherwise stateless: no caching, no shared mutable
// state, no retries.
type Service struct {
	fetcher      MetadataFetcher
	investigator Investigator // nil disables the investigation step
	scorer       Scorer
}

func NewService(fetcher MetadataFetcher, investigator Investigator, scorer Scorer) *Service {
	return &Service{
		fetcher:      fetcher,
		investigator: investigator,
		scorer:       scorer,
	}
}

// Analyze runs the full pipeline for one video URL. Mandatory steps fail the
// request; the investigation is only attempted when configured, and
// secondary metadata lookups have already degraded gracefully inside the
// fetcher by the time this sees them.
func (s *Service) Analyze(ctx context.Context, rawURL string) (*models.AnalysisResult, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("empty url: %w", ErrInvalidURL)
	}

	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return nil, fmt.Errorf("no video identifier in %q: %w", rawURL, ErrInvalidURL)
	}

	if s.fetcher == nil {
		return nil, fmt.Errorf("no YouTube API credential configured: %w", ErrVideoUnavailable)
	}

	meta, err := s.fetcher.FetchMetadata(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVideoUnavailable, err)
	}
	log.Printf("Fetched metadata for video %s (%s)", videoID, meta.Title)

	var investigation *models.Investigation
	if s.investigator != nil {
		investigation, err = s.investigator.Run(ctx, meta.Title, meta.ChannelTitle)
		if err != nil {
			return nil, fmt.Errorf("investigation failed: %w", err)
		}
		log.Printf("Investigation complete for video %s: fact-check %q, reputation %q",
			videoID, investigation.FactCheck.Verdict, investigation.ChannelReputation.Verdict)
	}

	prompt := ai.BuildAnalysisPrompt(meta, investigation)

	verdict, err := s.scorer.Score(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}

	return &models.AnalysisResult{
		IsClickbait:   verdict.IsClickbait,
		OverallScore:  verdict.OverallScore,
		Scores:        verdict.Scores,
		Analysis:      verdict.Analysis,
		VideoInfo:     videoInfo(meta),
		VideoDetails:  videoDetails(meta),
		Investigation: investigation,
	}, nil
}

func videoInfo(meta *models.VideoMetadata) *models.VideoInfo {
	return &models.VideoInfo{
		Title:       meta.Title,
		Thumbnail:   meta.Thumbnail,
		ChannelName: meta.ChannelTitle,
		Description: truncate(meta.Description, 500),
	}
}

func videoDetails(meta *models.VideoMetadata) *models.VideoDetails {
	details := &models.VideoDetails{
		ViewCount:    youtube.FormatCount(meta.ViewCount),
		LikeCount:    youtube.FormatCount(meta.LikeCount),
		CommentCount: youtube.FormatCount(meta.CommentCount),
		Duration:     meta.DurationDisplay,
		Tags:         meta.Tags,
		Chapters:     meta.Chapters,
		TopComments:  meta.TopComments,
	}
	if meta.SubscriberCount != nil {
		details.SubscriberCount = youtube.FormatCount(*meta.SubscriberCount)
	}
	if !meta.PublishedAt.IsZero() {
		details.PublishedAt = meta.PublishedAt.Format("2006-01-02")
	}
	return details
}

func truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
