package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"baitcheck/internal/models"

	"google.golang.org/genai"
)

func scoreSchema() *genai.Schema {
	percent := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeInteger,
			Description: desc,
			Minimum:     genai.Ptr(0.0),
			Maximum:     genai.Ptr(100.0),
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isClickbait":  {Type: genai.TypeBoolean, Description: "whether the video is clickbait"},
			"overallScore": percent("overall clickbait score"),
			"scores": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"titleExaggeration":     percent("how exaggerated the title is"),
					"thumbnailManipulation": percent("how manipulative the thumbnail is"),
					"contentMismatch":       percent("gap between promise and actual content"),
					"emotionalBait":         percent("emotional baiting"),
					"urgencyTactics":        percent("artificial urgency or scarcity"),
				},
				Required: []string{"titleExaggeration", "thumbnailManipulation", "contentMismatch", "emotionalBait", "urgencyTactics"},
			},
			"analysis": {Type: genai.TypeString, Description: "short natural-language commentary, around 100-200 characters"},
		},
		Required: []string{"isClickbait", "overallScore", "scores", "analysis"},
	}
}

// Score sends the assembled prompt to the model and validates the structured
// verdict. A response that fails the contract is rejected, not repaired; the
// caller surfaces this as a request-level failure with no retry.
func (c *Client) Score(ctx context.Context, prompt string) (*models.Verdict, error) {
	text, err := c.generate(ctx, prompt, scoreSchema())
	if err != nil {
		return nil, fmt.Errorf("scoring call failed: %w", err)
	}

	verdict, err := parseVerdict(text)
	if err != nil {
		return nil, fmt.Errorf("scoring response rejected: %w", err)
	}
	return verdict, nil
}

func parseVerdict(text string) (*models.Verdict, error) {
	var verdict models.Verdict
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verdict %q: %w", text, err)
	}
	if err := validateVerdict(&verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

func validateVerdict(v *models.Verdict) error {
	checks := []struct {
		name  string
		value int
	}{
		{"overallScore", v.OverallScore},
		{"titleExaggeration", v.Scores.TitleExaggeration},
		{"thumbnailManipulation", v.Scores.ThumbnailManipulation},
		{"contentMismatch", v.Scores.ContentMismatch},
		{"emotionalBait", v.Scores.EmotionalBait},
		{"urgencyTactics", v.Scores.UrgencyTactics},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > 100 {
			return fmt.Errorf("%s out of range: %d", c.name, c.value)
		}
	}
	if v.Analysis == "" {
		return fmt.Errorf("analysis commentary is required but was empty")
	}
	return nil
}
