package youtube

import (
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		iso      string
		expected string
	}{
		{name: "Hours minutes seconds", iso: "PT1H2M3S", expected: "1:02:03"},
		{name: "Minutes and seconds", iso: "PT5M30S", expected: "5:30"},
		{name: "Seconds only", iso: "PT45S", expected: "0:45"},
		{name: "Hours only", iso: "PT2H", expected: "2:00:00"},
		{name: "Minutes only", iso: "PT10M", expected: "10:00"},
		{name: "Long video", iso: "PT12H34M56S", expected: "12:34:56"},
		{name: "Malformed returned unchanged", iso: "1 hour", expected: "1 hour"},
		{name: "Bare PT returned unchanged", iso: "PT", expected: "PT"},
		{name: "Empty returned unchanged", iso: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.iso); got != tt.expected {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.iso, got, tt.expected)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n        uint64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.expected {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestParseChapters(t *testing.T) {
	description := "Check out my merch!\n" +
		"0:00 Intro\n" +
		"2:15 The experiment begins\n" +
		"not a chapter line\n" +
		"1:23:45 Outro\n" +
		"Thanks for watching"

	chapters := ParseChapters(description)

	want := []struct {
		time  string
		title string
	}{
		{"0:00", "Intro"},
		{"2:15", "The experiment begins"},
		{"1:23:45", "Outro"},
	}

	if len(chapters) != len(want) {
		t.Fatalf("ParseChapters() returned %d chapters, want %d", len(chapters), len(want))
	}
	for i, w := range want {
		if chapters[i].Time != w.time || chapters[i].Title != w.title {
			t.Errorf("chapter %d = {%q, %q}, want {%q, %q}", i, chapters[i].Time, chapters[i].Title, w.time, w.title)
		}
	}
}

func TestParseChaptersEdgeCases(t *testing.T) {
	t.Run("Empty description", func(t *testing.T) {
		if got := ParseChapters(""); len(got) != 0 {
			t.Errorf("expected no chapters, got %d", len(got))
		}
	})

	t.Run("Timestamp mid-line ignored", func(t *testing.T) {
		if got := ParseChapters("skip to 2:30 for the good part"); len(got) != 0 {
			t.Errorf("expected no chapters, got %d", len(got))
		}
	})

	t.Run("Timestamp without title ignored", func(t *testing.T) {
		if got := ParseChapters("0:00\n1:00"); len(got) != 0 {
			t.Errorf("expected no chapters, got %d", len(got))
		}
	})

	t.Run("Windows line endings", func(t *testing.T) {
		got := ParseChapters("0:00 Intro\r\n5:00 End\r\n")
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].Title != "Intro" || got[1].Title != "End" {
			t.Errorf("unexpected titles: %q, %q", got[0].Title, got[1].Title)
		}
	})
}
