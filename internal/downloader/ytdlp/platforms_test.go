package ytdlp

import "testing"

func TestAdaptationFor(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want func(t *testing.T, a Adaptation)
	}{
		{
			name: "tweets force the best mux",
			url:  "https://twitter.com/user/status/123",
			want: func(t *testing.T, a Adaptation) {
				if a.FormatOverride != "best" {
					t.Errorf("FormatOverride = %q, want best", a.FormatOverride)
				}
			},
		},
		{
			name: "instagram gets a browser user agent",
			url:  "https://www.instagram.com/reel/abc/",
			want: func(t *testing.T, a Adaptation) {
				if a.Headers["User-Agent"] == "" {
					t.Error("missing User-Agent header")
				}
			},
		},
		{
			name: "tiktok pins the api hostname",
			url:  "https://www.tiktok.com/@user/video/123",
			want: func(t *testing.T, a Adaptation) {
				if a.ExtractorArgs == "" {
					t.Error("missing extractor args")
				}
			},
		},
		{
			name: "youtube needs no tweaks",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: func(t *testing.T, a Adaptation) {
				if a.FormatOverride != "" || a.ExtractorArgs != "" || len(a.Headers) != 0 {
					t.Errorf("unexpected adaptation: %+v", a)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, AdaptationFor(tt.url))
		})
	}
}
