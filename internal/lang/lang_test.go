package lang

import (
	"strings"
	"testing"
)

func TestGetMessageFormatsArguments(t *testing.T) {
	Setup("en")
	got := GetMessage(FileTooLargeMsgID, "75 MB")
	if !strings.Contains(got, "75 MB") {
		t.Errorf("GetMessage = %q, want the size interpolated", got)
	}
}

func TestGetMessageFallsBackToEnglish(t *testing.T) {
	Setup("fr")
	defer Setup("en")

	got := GetMessage(StartMsgID)
	if !strings.Contains(got, "Hello") {
		t.Errorf("GetMessage = %q, want the English fallback", got)
	}
}

func TestEveryMessageExistsInEnglish(t *testing.T) {
	for id, byLang := range messages {
		if byLang["en"] == "" {
			t.Errorf("message %q has no English text", id)
		}
	}
}

func TestRandomThanksReplyNeverEmpty(t *testing.T) {
	Setup("he")
	defer Setup("en")
	for i := 0; i < 10; i++ {
		if RandomThanksReply() == "" {
			t.Fatal("empty thanks reply")
		}
	}
}
