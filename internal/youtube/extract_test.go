package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "Standard watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Watch URL with extra parameters",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Watch URL with v not first",
			url:    "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Short link",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Short link with query",
			url:    "https://youtu.be/dQw4w9WgXcQ?si=abc123",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Shorts URL",
			url:    "https://www.youtube.com/shorts/abc-DEF_123",
			want:   "abc-DEF_123",
			wantOK: true,
		},
		{
			name:   "Embed URL",
			url:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Fragment terminates identifier",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ#comments",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Not a URL",
			url:    "not a url",
			wantOK: false,
		},
		{
			name:   "Unrelated site",
			url:    "https://example.com/watch?v=dQw4w9WgXcQ",
			wantOK: false,
		},
		{
			name:   "Channel URL",
			url:    "https://www.youtube.com/@SomeChannel",
			wantOK: false,
		},
		{
			name:   "Empty string",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got != want {
		t.Errorf("WatchURL() = %q, want %q", got, want)
	}
}
