package youtube

import "regexp"

// Accepted URL shapes, tried in order. The identifier character class stops
// matching at the first query-string delimiter, fragment, or path separator.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:.*&)?v=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`),
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. The second
// return value is false when no known shape matches; callers should treat
// that as invalid input, not a system failure.
func ExtractVideoID(raw string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// WatchURL returns the canonical watch URL for a video identifier.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
