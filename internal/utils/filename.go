package utils

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	youtube "github.com/kkdai/youtube/v2"
)

const maxFileNameRunes = 80

var (
	unsafeChars       = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	underscoreRuns    = regexp.MustCompile(`_+`)
	minUsableFileName = 3
)

// SanitizeFileName reduces a title to a safe, length-bounded file name stem.
func SanitizeFileName(name string) string {
	cleaned := unsafeChars.ReplaceAllString(name, "_")
	cleaned = underscoreRuns.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	runes := []rune(cleaned)
	if len(runes) > maxFileNameRunes {
		cleaned = string(runes[:maxFileNameRunes])
	}
	return cleaned
}

// FileNameBase derives a unique output name stem for a download: a readable
// prefix from the title, the platform-assigned id or the URL path, joined
// with a random component. The random part guarantees two concurrent fetches
// of the same item never share files in the download directory.
func FileNameBase(title, rawURL string) string {
	return readableStem(title, rawURL) + "_" + uuid.NewString()[:8]
}

func readableStem(title, rawURL string) string {
	if base := SanitizeFileName(title); len([]rune(base)) >= minUsableFileName {
		return base
	}
	if id, err := youtube.ExtractVideoID(rawURL); err == nil && id != "" {
		return "video_" + id
	}
	if parsedURL, err := url.Parse(rawURL); err == nil {
		if slug := SanitizeFileName(strings.Trim(parsedURL.Path, "/")); len([]rune(slug)) >= minUsableFileName {
			return slug
		}
	}
	return "media"
}
