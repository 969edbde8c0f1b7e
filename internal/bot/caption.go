package bot

import "strings"

// MaxCaptionLength is the transport's per-message caption ceiling.
const MaxCaptionLength = 1024

// captionSearchWindow is how far back from the ceiling a natural break
// (newline, then space) is searched before cutting hard.
const captionSearchWindow = 124

// SplitCaption chunks text so no chunk exceeds MaxCaptionLength, preferring
// to break at a newline, then at a space, inside the tail window of each
// chunk. Empty chunks are dropped.
func SplitCaption(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= MaxCaptionLength {
		return []string{text}
	}

	var chunks []string
	appendChunk := func(s string) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}

	start := 0
	for start < len(runes) {
		end := start + MaxCaptionLength
		if end >= len(runes) {
			appendChunk(string(runes[start:]))
			break
		}

		searchStart := end - captionSearchWindow
		if searchStart < start {
			searchStart = start
		}

		cut := lastRuneIndex(runes, '\n', searchStart, end-1)
		if cut <= searchStart {
			cut = lastRuneIndex(runes, ' ', searchStart, end-1)
		}

		if cut > searchStart {
			appendChunk(string(runes[start:cut]))
			start = cut + 1
		} else {
			appendChunk(string(runes[start : end-1]))
			start = end - 1
		}
	}
	return chunks
}

// lastRuneIndex returns the index of the last occurrence of r in runes[from:to),
// or -1 when absent.
func lastRuneIndex(runes []rune, r rune, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
