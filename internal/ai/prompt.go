package ai

import (
	"fmt"
	"strings"

	"baitcheck/internal/models"
	"baitcheck/internal/youtube"
)

const (
	// maxDescriptionChars bounds how much of the description is embedded.
	maxDescriptionChars = 2000
	// maxHeadlineResults bounds how many search hits per investigation
	// branch are quoted in the prompt.
	maxHeadlineResults = 3
)

// BuildAnalysisPrompt renders all gathered data into the scoring prompt. It
// is pure and deterministic: identical inputs always produce an identical
// string, which keeps the assembly testable even though the model call that
// consumes it is not.
func BuildAnalysisPrompt(meta *models.VideoMetadata, investigation *models.Investigation) string {
	var b strings.Builder

	b.WriteString(`You are an assistant that rates how clickbait a YouTube video is.
Analyze the video information below and decide whether it is clickbait.

VIDEO INFORMATION:
`)
	fmt.Fprintf(&b, "Title: %s\n", meta.Title)
	fmt.Fprintf(&b, "Channel: %s\n", meta.ChannelTitle)
	if meta.SubscriberCount != nil {
		fmt.Fprintf(&b, "Subscribers: %s\n", youtube.FormatCount(*meta.SubscriberCount))
	}
	if !meta.PublishedAt.IsZero() {
		fmt.Fprintf(&b, "Published: %s\n", meta.PublishedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Duration: %s\n", meta.DurationDisplay)
	fmt.Fprintf(&b, "Views: %s\n", youtube.FormatCount(meta.ViewCount))
	fmt.Fprintf(&b, "Likes: %s\n", youtube.FormatCount(meta.LikeCount))
	fmt.Fprintf(&b, "Comments: %s\n", youtube.FormatCount(meta.CommentCount))
	fmt.Fprintf(&b, "Tags: %s\n", joinOrNone(meta.Tags))

	fmt.Fprintf(&b, "\nDESCRIPTION (truncated):\n%s\n", truncateString(meta.Description, maxDescriptionChars))

	b.WriteString("\nCHAPTERS:\n")
	if len(meta.Chapters) == 0 {
		b.WriteString("none\n")
	} else {
		for _, ch := range meta.Chapters {
			fmt.Fprintf(&b, "%s %s\n", ch.Time, ch.Title)
		}
	}

	b.WriteString("\nTOP COMMENTS:\n")
	if len(meta.TopComments) == 0 {
		b.WriteString("no comments\n")
	} else {
		for _, comment := range meta.TopComments {
			fmt.Fprintf(&b, "- %s\n", comment)
		}
	}

	if investigation != nil {
		writeInvestigation(&b, investigation)
	}

	b.WriteString(`
SCORING RUBRIC (each dimension 0-100):
- titleExaggeration: sensational wording, shock phrases, "you won't believe" framing
- thumbnailManipulation: red circles, arrows, shocked faces, heavy editing
- contentMismatch: gap between what the title/thumbnail promise and what the video delivers
- emotionalBait: anger, fear, outrage or curiosity baiting
- urgencyTactics: artificial urgency or scarcity ("right now", "before it's deleted")

Judge contentMismatch from the description, chapters and viewer comments.
Comments complaining about misleading titles are strong evidence of clickbait.`)

	if investigation != nil {
		b.WriteString(`
Weigh the investigation findings heavily: a failed fact-check or a channel
with prior clickbait accusations should raise the relevant scores.`)
	}

	b.WriteString(`

Return your verdict with an overall score, the five dimension scores and a
short commentary of roughly 100-200 characters.`)

	return b.String()
}

func writeInvestigation(b *strings.Builder, inv *models.Investigation) {
	b.WriteString("\nINVESTIGATION FINDINGS:\n")

	fmt.Fprintf(b, "Fact-check query: %s\n", inv.FactCheck.Query)
	fmt.Fprintf(b, "Fact-check verdict: %s (credible sources: %d)\n", inv.FactCheck.Verdict, inv.FactCheck.CredibleSources)
	for i, r := range inv.FactCheck.Results {
		if i >= maxHeadlineResults {
			break
		}
		fmt.Fprintf(b, "- %s: %s\n", r.Title, r.Snippet)
	}

	fmt.Fprintf(b, "Channel reputation verdict: %s\n", inv.ChannelReputation.Verdict)
	if len(inv.ChannelReputation.Signals) > 0 {
		fmt.Fprintf(b, "Warning signals: %s\n", strings.Join(inv.ChannelReputation.Signals, ", "))
	}
	for i, r := range inv.ChannelReputation.Results {
		if i >= maxHeadlineResults {
			break
		}
		fmt.Fprintf(b, "- %s: %s\n", r.Title, r.Snippet)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}
