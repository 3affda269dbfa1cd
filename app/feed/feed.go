// Package feed contains clients for the news search feed: querying it,
// and resolving entry links to publisher URLs.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed/rss"
	"golang.org/x/exp/slog"
)

// Item is a single feed entry, discarded after the pack is assembled.
type Item struct {
	Title  string
	Link   string
	Source string
}

// Opts contains parameters for the search feed client.
type Opts struct {
	BaseURL  string // search feed endpoint
	Language string // hl parameter
	Country  string // gl parameter
	Edition  string // ceid parameter
	Window   string // recency window for the "when:" operator
	MaxItems int    // hard cap on entries taken from a feed
}

// Client queries the news search feed for a city.
type Client struct {
	log    *slog.Logger
	cl     *http.Client
	parser *rss.Parser
	opts   Opts
}

// NewClient creates new search feed client.
func NewClient(lg *slog.Logger, cl *http.Client, opts Opts) *Client {
	return &Client{log: lg, cl: cl, parser: &rss.Parser{}, opts: opts}
}

// SearchURL builds the search feed URL for the given query, scoped to the
// configured recency window and locale.
func (c *Client) SearchURL(query string) string {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s when:%s", query, c.opts.Window))
	q.Set("hl", c.opts.Language)
	q.Set("gl", c.opts.Country)
	q.Set("ceid", c.opts.Edition)
	return c.opts.BaseURL + "?" + q.Encode()
}

// Search fetches and parses the search feed for the given city, returning at
// most MaxItems entries in feed order.
func (c *Client) Search(ctx context.Context, city string) ([]Item, error) {
	u := c.SearchURL(city)
	c.log.DebugCtx(ctx, "fetching search feed", slog.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]Item, 0, c.opts.MaxItems)
	for _, entry := range feed.Items {
		if len(items) >= c.opts.MaxItems {
			break
		}
		items = append(items, Item{
			Title:  strings.TrimSpace(entry.Title),
			Link:   strings.TrimSpace(entry.Link),
			Source: sourceName(entry),
		})
	}

	c.log.DebugCtx(ctx, "search feed fetched", slog.Int("items", len(items)))
	return items, nil
}

// sourceName picks the publisher name from the entry; the search feed carries
// it in the RSS <source> element, with the entry author as a fallback.
func sourceName(entry *rss.Item) string {
	if entry.Source != nil && strings.TrimSpace(entry.Source.Title) != "" {
		return strings.TrimSpace(entry.Source.Title)
	}
	return strings.TrimSpace(entry.Author)
}
