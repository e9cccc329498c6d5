package models

// ScoreBreakdown is the five weighted clickbait dimensions, each an integer
// percentage in [0, 100].
type ScoreBreakdown struct {
	TitleExaggeration     int `json:"titleExaggeration"`
	ThumbnailManipulation int `json:"thumbnailManipulation"`
	ContentMismatch       int `json:"contentMismatch"`
	EmotionalBait         int `json:"emotionalBait"`
	UrgencyTactics        int `json:"urgencyTactics"`
}

// Verdict is the structured output of the scoring model call, before it is
// merged with display metadata.
type Verdict struct {
	IsClickbait  bool           `json:"isClickbait"`
	OverallScore int            `json:"overallScore"`
	Scores       ScoreBreakdown `json:"scores"`
	Analysis     string         `json:"analysis"`
}

// AnalysisResult is the response body of a successful analysis request.
type AnalysisResult struct {
	IsClickbait   bool           `json:"isClickbait"`
	OverallScore  int            `json:"overallScore"`
	Scores        ScoreBreakdown `json:"scores"`
	Analysis      string         `json:"analysis"`
	VideoInfo     *VideoInfo     `json:"videoInfo"`
	VideoDetails  *VideoDetails  `json:"videoDetails,omitempty"`
	Investigation *Investigation `json:"investigation,omitempty"`
	Error         bool           `json:"error,omitempty"`
}
