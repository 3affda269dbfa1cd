package pack

import (
	"regexp"
	"strings"
	"time"
)

// cityPrefixRe matches a leading "City Name — " prefix, stripped so the clue
// doesn't leak the city's identity.
var cityPrefixRe = regexp.MustCompile(`^[A-Z][A-Za-z\s\-]+\s+—\s+`)

// starters are the fixed lead-in phrases. The selector depends on the wall
// clock, not the story, so all clues within one run share a lead-in.
var starters = []string{
	"Yesterday, the front page led with: ",
	"Yesterday, everyone was talking about: ",
	"Yesterday, a headline that stood out: ",
	"Yesterday, the biggest buzz was about: ",
}

const (
	clueMaxLen  = 95 // headlines longer than this get truncated
	clueBreakAt = 92 // truncation point, backed off to the last space
)

// Clue rewrites a headline into a stylized clue sentence.
func Clue(headline string, now time.Time) string {
	t := strings.TrimSpace(headline)
	t = cityPrefixRe.ReplaceAllString(t, "")

	if runes := []rune(t); len(runes) > clueMaxLen {
		head := string(runes[:clueBreakAt])
		if idx := strings.LastIndex(head, " "); idx > 0 {
			head = head[:idx]
		}
		t = head + "…"
	}

	return starters[int(now.Unix())%len(starters)] + t
}
