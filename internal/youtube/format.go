package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"baitcheck/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	chapterLineRe = regexp.MustCompile(`^((?:\d{1,2}:)?\d{1,2}:\d{2})\s+(.+)$`)
)

var countPrinter = message.NewPrinter(language.English)

// FormatDuration converts an ISO 8601 duration ("PT1H2M3S") into a
// colon-separated display form ("1:02:03"). The hour component is omitted
// when zero; durations under a minute render as "0:SS". Malformed input is
// returned unchanged.
func FormatDuration(iso string) string {
	m := isoDurationRe.FindStringSubmatch(iso)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return iso
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatCount renders a raw count with thousands separators for display.
func FormatCount(n uint64) string {
	return countPrinter.Sprintf("%d", n)
}

// ParseChapters scans a video description line by line for chapter markers.
// A chapter line starts with a "H:MM:SS" or "MM:SS" timestamp followed by
// whitespace and the chapter title; everything else is ignored. Order is
// preserved.
func ParseChapters(description string) []models.Chapter {
	var chapters []models.Chapter
	for _, line := range strings.Split(description, "\n") {
		m := chapterLineRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		chapters = append(chapters, models.Chapter{Time: m[1], Title: m[2]})
	}
	return chapters
}
