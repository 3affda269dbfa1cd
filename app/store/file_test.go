package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citypacks.json")
	err := os.WriteFile(path, []byte(`{"cities":[{"city":"Paris"},{"city":"New York"}]}`), 0o644)
	require.NoError(t, err)

	cities, err := Cities(path)
	require.NoError(t, err)

	assert.Equal(t, []City{{City: "Paris"}, {City: "New York"}}, cities)
}

func TestCities_Missing(t *testing.T) {
	_, err := Cities(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "read cities file")
}

func TestCities_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citypacks.json")
	err := os.WriteFile(path, []byte(`{"cities": [`), 0o644)
	require.NoError(t, err)

	_, err = Cities(path)
	assert.ErrorContains(t, err, "unmarshal cities file")
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	doc := Document{
		GeneratedAt: "2024-03-01T12:30:45Z",
		Packs: []Pack{{
			City: "Paris",
			Cards: []Card{
				{Emoji: "🚇", Clue: "Yesterday, the front page led with: New metro line"},
			},
			Stories: []Story{
				{Headline: "Paris — New metro line", Source: "Le Monde", URL: "https://example.com/a?b=1&c=2"},
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "citypacks.generated.json")
	require.NoError(t, WriteDocument(path, doc))

	bts, err := os.ReadFile(path)
	require.NoError(t, err)

	// human-readable, no html escaping: emoji and ampersands stay literal
	assert.Contains(t, string(bts), "🚇")
	assert.Contains(t, string(bts), "https://example.com/a?b=1&c=2")
	assert.Contains(t, string(bts), "\n  \"packs\"")

	var got Document
	require.NoError(t, json.Unmarshal(bts, &got))
	assert.Equal(t, doc, got)
}

func TestWriteDocument_EmptyPack(t *testing.T) {
	doc := Document{
		GeneratedAt: "2024-03-01T12:30:45Z",
		Packs:       []Pack{{City: "Lima", Cards: []Card{}, Stories: []Story{}}},
	}

	path := filepath.Join(t.TempDir(), "citypacks.generated.json")
	require.NoError(t, WriteDocument(path, doc))

	bts, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(bts), `"cards": []`)
	assert.Contains(t, string(bts), `"stories": []`)
	assert.NotContains(t, string(bts), "null")
}
