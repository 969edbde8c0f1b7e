package lang

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

var lang = "en"

// Setup selects the reply language; unknown languages fall back to English
// per message.
func Setup(language string) {
	if language != "" {
		lang = language
	}
}

// GetMessage formats the message for the configured language.
func GetMessage(id MessageID, args ...any) string {
	if m, ok := messages[id]; ok {
		if msg, ok := m[lang]; ok {
			return fmt.Sprintf(msg, args...)
		}
		if msg, ok := m["en"]; ok {
			return fmt.Sprintf(msg, args...)
		}
	}
	logrus.WithField("message_id", id).Warn("Message not found")
	return "Message not found"
}

// RandomThanksReply picks one canned acknowledgement.
func RandomThanksReply() string {
	replies := thanksReplies[lang]
	if len(replies) == 0 {
		replies = thanksReplies["en"]
	}
	return replies[rand.Intn(len(replies))]
}
