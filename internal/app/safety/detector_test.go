package safety

import "testing"

func TestDetectCrisisPhrases(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    bool
	}{
		{"direct statement", "I want to die", true},
		{"phrase inside sentence", "lately I've been thinking about suicide a lot", true},
		{"uppercase", "I FEEL HOPELESS", true},
		{"hyphenated phrase", "I keep thinking about self-harm", true},
		{"punctuation after phrase", "Everything feels hopeless.", true},
		{"ordinary message", "I feel okay today", false},
		{"empty-ish message", "   ", false},
		{"positive message", "had a great walk, feeling hopeful", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.message); got != tc.want {
				t.Fatalf("Detect(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

// Regression: word-boundary anchoring must not fire on longer words that
// merely contain a listed phrase.
func TestDetectWordBoundaries(t *testing.T) {
	if Detect("I was hopelessly lost in the new building") {
		t.Fatalf("'hopelessly' must not match the phrase 'hopeless'")
	}
	if Detect("the suicidealley mural downtown") {
		t.Fatalf("embedded phrase without boundary must not match")
	}
}

func TestCrisisReplyIsStable(t *testing.T) {
	msg1, lines1 := CrisisReply()
	msg2, lines2 := CrisisReply()
	if msg1 != msg2 || lines1 != lines2 {
		t.Fatalf("crisis reply must be fixed and verbatim across calls")
	}
	if msg1 == "" || lines1.Phone == "" || lines1.Global == "" {
		t.Fatalf("crisis reply must include supportive text and helplines")
	}
}
