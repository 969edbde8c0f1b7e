package utils

import "testing"

func TestIsThankYouMessage(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"thanks!", true},
		{"Thank you so much", true},
		{"thx", true},
		{"תודה רבה", true},
		{"תנקס", true},
		{"THANKS", true},
		{"https://youtu.be/dQw4w9WgXcQ", false},
		{"can you download this", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsThankYouMessage(tt.input); got != tt.want {
			t.Errorf("IsThankYouMessage(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
