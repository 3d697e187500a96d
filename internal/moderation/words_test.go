package moderation

import (
	"strings"
	"testing"
)

func TestContainsForbiddenWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "오늘 7시에 강남역에서 만나요", false},
		{"empty", "", false},
		{"financial fraud keyword", "먼저 계좌이체 해주시면 됩니다", true},
		{"investment scam keyword", "투자 기회가 있는데 관심 있어요?", true},
		{"solicitation keyword", "원나잇 어때요", true},
		{"profanity", "병신 같은 소리 하네", true},
		{"keyword inside longer text", "지금송금하면할인", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsForbiddenWords(tt.text); got != tt.want {
				t.Fatalf("ContainsForbiddenWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMask(t *testing.T) {
	masked := Mask("먼저 송금 부탁드립니다")
	if strings.Contains(masked, "송금") {
		t.Fatalf("Mask left forbidden word in place: %q", masked)
	}
	if !strings.Contains(masked, "**") {
		t.Fatalf("Mask did not insert asterisks: %q", masked)
	}

	clean := "오늘 7시에 만나요"
	if got := Mask(clean); got != clean {
		t.Fatalf("Mask altered clean text: %q", got)
	}
}

// Mask обязан сворачивать регистр так же, как ContainsForbiddenWords
func TestMaskIsCaseInsensitive(t *testing.T) {
	forbiddenWords = append(forbiddenWords, "scam")
	defer func() { forbiddenWords = forbiddenWords[:len(forbiddenWords)-1] }()

	got := Mask("this is a SCAM offer")
	if strings.Contains(strings.ToLower(got), "scam") {
		t.Fatalf("Mask left mixed-case forbidden word in place: %q", got)
	}
	if got != "this is a **** offer" {
		t.Fatalf("Mask = %q, want %q", got, "this is a **** offer")
	}
}
