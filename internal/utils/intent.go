package utils

import "strings"

// thankYouPhrases are matched as case-insensitive substrings, English and
// Hebrew alike.
var thankYouPhrases = []string{
	"thank you",
	"thanks",
	"thx",
	"תודה",
	"תנקס",
}

// IsThankYouMessage reports whether text contains a gratitude phrase.
func IsThankYouMessage(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range thankYouPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
