package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestClient_SearchURL(t *testing.T) {
	cl := NewClient(slog.Default(), http.DefaultClient, Opts{
		BaseURL:  "https://news.google.com/rss/search",
		Language: "en-US",
		Country:  "US",
		Edition:  "US:en",
		Window:   "21d",
		MaxItems: 8,
	})

	u, err := url.Parse(cl.SearchURL("New York"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "New York when:21d", q.Get("q"))
	assert.Equal(t, "en-US", q.Get("hl"))
	assert.Equal(t, "US", q.Get("gl"))
	assert.Equal(t, "US:en", q.Get("ceid"))
}

func TestClient_Search(t *testing.T) {
	var gotQuery url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, searchFeedXML(10))
	}))
	defer ts.Close()

	cl := NewClient(slog.Default(), ts.Client(), Opts{
		BaseURL:  ts.URL,
		Language: "en-US",
		Country:  "US",
		Edition:  "US:en",
		Window:   "21d",
		MaxItems: 8,
	})

	items, err := cl.Search(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris when:21d", gotQuery.Get("q"))

	// capped at MaxItems, in feed order
	require.Len(t, items, 8)
	assert.Equal(t, "Headline 1", items[0].Title)
	assert.Equal(t, "https://news.google.com/rss/articles/1", items[0].Link)
	assert.Equal(t, "Publisher 1", items[0].Source)

	// entry without a <source> element falls back to the author
	assert.Equal(t, "Author 2", items[1].Source)
	// entry with neither stays empty
	assert.Equal(t, "", items[2].Source)
}

func TestClient_Search_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cl := NewClient(slog.Default(), ts.Client(), Opts{BaseURL: ts.URL, MaxItems: 8})

	_, err := cl.Search(context.Background(), "Paris")
	assert.ErrorContains(t, err, "bad status code: 503")
}

func TestClient_Search_MalformedFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not a feed at all")
	}))
	defer ts.Close()

	cl := NewClient(slog.Default(), ts.Client(), Opts{BaseURL: ts.URL, MaxItems: 8})

	_, err := cl.Search(context.Background(), "Paris")
	assert.ErrorContains(t, err, "parse feed")
}

// searchFeedXML renders a search feed with n entries; the first carries a
// <source> element, the second only an author, the third neither.
func searchFeedXML(n int) string {
	items := ""
	for i := 1; i <= n; i++ {
		extra := ""
		switch i {
		case 1:
			extra = fmt.Sprintf(`<source url="https://publisher%d.example.com">Publisher %d</source>`, i, i)
		case 2:
			extra = fmt.Sprintf(`<author>Author %d</author>`, i)
		}
		items += fmt.Sprintf(`<item>
			<title>Headline %d</title>
			<link>https://news.google.com/rss/articles/%d</link>
			%s
		</item>`, i, i, extra)
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
	<title>search feed</title>
	<link>https://news.google.com</link>
	<description>latest stories</description>
	` + items + `
</channel></rss>`
}
