package safety

import (
	"regexp"
	"strings"
)

// crisisPhrases is intentionally broad: a missed crisis signal costs far more
// than a false positive, so near-synonyms and common phrasings are all listed.
// English-only for now.
var crisisPhrases = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"killing myself",
	"end my life",
	"ending my life",
	"take my own life",
	"want to die",
	"wanna die",
	"wish i was dead",
	"wish i were dead",
	"better off dead",
	"no reason to live",
	"nothing to live for",
	"end it all",
	"can't go on",
	"self harm",
	"self-harm",
	"harm myself",
	"hurt myself",
	"cut myself",
	"cutting myself",
	"hopeless",
	"worthless",
	"give up on life",
}

// crisisPattern anchors every phrase to word boundaries so that e.g.
// "hopelessly" does not match "hopeless" mid-word.
var crisisPattern = regexp.MustCompile(`(?i)\b(?:` + joinQuoted(crisisPhrases) + `)\b`)

func joinQuoted(phrases []string) string {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return strings.Join(quoted, "|")
}

// Detect reports whether the message contains a crisis-indicating phrase.
// Stateless, deterministic, single-message: no context window, no scoring.
func Detect(message string) bool {
	return crisisPattern.MatchString(message)
}
