// Package store contains models and file storage for generated city packs.
package store

// City is an input record from the cities file.
type City struct {
	City string `json:"city"`
}

// Story is a resolved news story within a pack.
type Story struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// Card is the emoji and clue pair derived from a story's headline.
type Card struct {
	Emoji string `json:"emoji"`
	Clue  string `json:"clue"`
}

// Pack is the per-city bundle of stories and matching clue cards.
type Pack struct {
	City    string  `json:"city"`
	Cards   []Card  `json:"cards"`
	Stories []Story `json:"stories"`
}

// Document is the root output artifact, fully regenerated on each run.
type Document struct {
	GeneratedAt string `json:"generated_at"`
	Packs       []Pack `json:"packs"`
}
