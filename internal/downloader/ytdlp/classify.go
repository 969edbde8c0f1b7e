package ytdlp

import (
	"fmt"
	"strings"

	"github.com/mkravets/telegram-clip-bot/internal/downloader"
)

// classifyEngineError maps yt-dlp stderr to the closed error kind set. This
// is the only place engine message text is inspected.
func classifyEngineError(stderr string, cause error) error {
	summary := errorSummary(stderr)

	switch {
	case containsAny(stderr,
		"Sign in to confirm your age",
		"age-restricted",
		"This video may be inappropriate",
		"confirm you are over"):
		return fmt.Errorf("%w: %s", downloader.ErrRestricted, summary)

	case containsAny(stderr,
		"Video unavailable",
		"This video is not available",
		"Private video",
		"has been removed",
		"account has been terminated",
		"content isn't available"):
		return fmt.Errorf("%w: %s", downloader.ErrUnavailable, summary)

	case containsAny(stderr,
		"Requested format is not available",
		"requested format not available"):
		return fmt.Errorf("%w: %s", downloader.ErrFormatUnavailable, summary)

	case containsAny(stderr,
		"timed out",
		"Connection reset",
		"Temporary failure in name resolution",
		"Unable to download webpage",
		"Connection refused"):
		return fmt.Errorf("%w: %s", downloader.ErrNetwork, summary)
	}

	if summary != "" {
		return fmt.Errorf("engine failed: %s: %w", summary, cause)
	}
	return fmt.Errorf("engine failed: %w", cause)
}

func containsAny(s string, needles ...string) bool {
	lowered := strings.ToLower(s)
	for _, needle := range needles {
		if strings.Contains(lowered, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// errorSummary extracts the first ERROR line of engine stderr, or the first
// non-empty line.
func errorSummary(stderr string) string {
	var first string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if strings.HasPrefix(line, "ERROR:") {
			return line
		}
	}
	return first
}
