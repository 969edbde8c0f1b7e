package utils

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "My Favorite Song", "My_Favorite_Song"},
		{"punctuation collapsed", "Song!!! (Official Video) [HD]", "Song_Official_Video_HD"},
		{"unicode preserved", "שיר יפה", "שיר_יפה"},
		{"leading and trailing junk", "  ---Song---  ", "Song"},
		{"only junk", "!!!???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileNameBoundsLength(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := SanitizeFileName(long)
	if len([]rune(got)) != maxFileNameRunes {
		t.Errorf("sanitized length = %d, want %d", len([]rune(got)), maxFileNameRunes)
	}
}

func TestFileNameBase(t *testing.T) {
	t.Run("usable title wins", func(t *testing.T) {
		got := FileNameBase("Great Clip", "https://youtu.be/dQw4w9WgXcQ")
		if !strings.HasPrefix(got, "Great_Clip_") {
			t.Errorf("FileNameBase = %q, want a Great_Clip_ prefix", got)
		}
	})

	t.Run("degenerate title falls back to video id", func(t *testing.T) {
		got := FileNameBase("!!", "https://youtu.be/dQw4w9WgXcQ")
		if !strings.HasPrefix(got, "video_dQw4w9WgXcQ_") {
			t.Errorf("FileNameBase = %q, want a video_dQw4w9WgXcQ_ prefix", got)
		}
	})

	t.Run("non-youtube falls back to path slug", func(t *testing.T) {
		got := FileNameBase("", "https://example.com/some-clip")
		if !strings.HasPrefix(got, "some_clip_") {
			t.Errorf("FileNameBase = %q, want a some_clip_ prefix", got)
		}
	})

	t.Run("no usable source still yields a stem", func(t *testing.T) {
		got := FileNameBase("", "https://example.com/")
		if !strings.HasPrefix(got, "media_") {
			t.Errorf("FileNameBase = %q, want media_ prefix", got)
		}
	})
}

// Identical inputs must never share an output stem, or two chats fetching the
// same item concurrently would overwrite and then delete each other's files.
func TestFileNameBaseIsUniquePerInvocation(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		stem := FileNameBase("Great Clip", "https://youtu.be/dQw4w9WgXcQ")
		if seen[stem] {
			t.Fatalf("stem %q repeated across invocations", stem)
		}
		seen[stem] = true
	}
}
