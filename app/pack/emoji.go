package pack

import "regexp"

// emojiRules maps keyword patterns to emoji. Order is a priority ranking:
// the first matching pattern wins, so e.g. transit beats weather for a
// headline mentioning both.
var emojiRules = []struct {
	re    *regexp.Regexp
	emoji string
}{
	{regexp.MustCompile(`(?i)subway|metro|rail|train|airport|flight|transit`), "🚇"},
	{regexp.MustCompile(`(?i)storm|snow|rain|flood|heat|wildfire|earthquake|hurricane`), "🌧️"},
	{regexp.MustCompile(`(?i)mayor|council|parliament|congress|government|policy|election`), "🏛️"},
	{regexp.MustCompile(`(?i)court|judge|trial|lawsuit|legal`), "⚖️"},
	{regexp.MustCompile(`(?i)music|festival|concert|tour`), "🎶"},
	{regexp.MustCompile(`(?i)art|museum|exhibit|gallery|theater|theatre|broadway|film`), "🎭"},
	{regexp.MustCompile(`(?i)soccer|football|nba|nfl|mlb|nhl|win|beat|match|game`), "🏟️"},
	{regexp.MustCompile(`(?i)restaurant|food|chef|dining`), "🍽️"},
	{regexp.MustCompile(`(?i)tech|ai|startup|software|chip|cyber`), "💻"},
	{regexp.MustCompile(`(?i)port|harbor|harbour|ship|cruise`), "⚓️"},
}

// defaultEmoji is returned when no pattern matches the headline.
const defaultEmoji = "📰"

// Emoji classifies a headline to an emoji by the first matching pattern.
func Emoji(headline string) string {
	for _, rule := range emojiRules {
		if rule.re.MatchString(headline) {
			return rule.emoji
		}
	}
	return defaultEmoji
}
