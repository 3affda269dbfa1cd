// Package pack assembles per-city packs of classified news stories and
// clue cards.
package pack

import (
	"context"
	"strings"
	"time"

	"github.com/Semior001/citypacks/app/feed"
	"github.com/Semior001/citypacks/app/logging"
	"github.com/Semior001/citypacks/app/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// Feed searches the news feed for a city.
type Feed interface {
	Search(ctx context.Context, city string) ([]feed.Item, error)
}

// Resolver resolves entry links to publisher URLs.
type Resolver interface {
	Resolve(ctx context.Context, link string) string
	Aggregator(u string) bool
}

// SiteNamer guesses a publisher name from a resolved page.
type SiteNamer interface {
	SiteName(ctx context.Context, u string) string
}

// source and headline fallbacks for entries with missing metadata
const (
	fallbackSource   = "Source"
	fallbackHeadline = "Headline"
	backfillSource   = "Google News"
)

// sourceMaxLen caps the persisted source name length.
const sourceMaxLen = 40

// Service builds city packs out of feed entries. Cities are processed
// sequentially, one to completion before the next.
type Service struct {
	Log       *slog.Logger
	Feed      Feed
	Resolver  Resolver
	SiteNamer SiteNamer // optional, used when the feed carries no source name

	MaxStories int              // slots per pack
	Now        func() time.Time // defaults to time.Now
}

// BuildDocument runs the pipeline for every city and aggregates the packs
// into the output document, in input order.
func (s *Service) BuildDocument(ctx context.Context, cities []store.City) store.Document {
	now := s.now()

	doc := store.Document{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Packs:       make([]store.Pack, 0, len(cities)),
	}

	for _, city := range cities {
		cctx := logging.ContextWithRequestID(ctx, uuid.New().String())
		cctx = logging.ContextWithCity(cctx, city.City)

		p := s.buildPack(cctx, city.City, now)
		s.Log.InfoCtx(cctx, "pack built", slog.Int("stories", len(p.Stories)))

		doc.Packs = append(doc.Packs, p)
	}

	return doc
}

// buildPack collects up to MaxStories resolved stories for the city, then
// backfills remaining slots with raw entries under the aggregator's label.
func (s *Service) buildPack(ctx context.Context, city string, now time.Time) store.Pack {
	items, err := s.Feed.Search(ctx, city)
	if err != nil {
		// degrade to an empty entry list, the pack just gets fewer stories
		s.Log.WarnCtx(ctx, "failed to fetch feed", slog.Any("err", err))
		items = nil
	}

	stories := make([]store.Story, 0, s.MaxStories)

	for _, item := range items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		u := s.Resolver.Resolve(ctx, item.Link)
		if s.Resolver.Aggregator(u) {
			// redirect resolution failed or the aggregator retained the
			// link, the entry doesn't count toward the quota
			s.Log.DebugCtx(ctx, "skipping unresolved entry", slog.String("link", item.Link))
			continue
		}

		stories = append(stories, store.Story{
			Headline: item.Title,
			Source:   truncate(s.source(ctx, item, u), sourceMaxLen),
			URL:      u,
		})

		if len(stories) >= s.MaxStories {
			break
		}
	}

	// not enough resolved URLs, allow remaining entries with the feed's own
	// link; still works, but not ideal
	for len(stories) < s.MaxStories && len(items) > len(stories) {
		item := items[len(stories)]

		headline := item.Title
		if headline == "" {
			headline = fallbackHeadline
		}

		stories = append(stories, store.Story{
			Headline: headline,
			Source:   backfillSource,
			URL:      item.Link,
		})
	}

	cards := lo.Map(stories, func(st store.Story, _ int) store.Card {
		return store.Card{Emoji: Emoji(st.Headline), Clue: Clue(st.Headline, now)}
	})

	return store.Pack{City: city, Cards: cards, Stories: stories}
}

// source picks the publisher name for the story: feed metadata first, then
// the resolved page's site name, then a literal fallback.
func (s *Service) source(ctx context.Context, item feed.Item, resolvedURL string) string {
	if item.Source != "" {
		return item.Source
	}
	if s.SiteNamer != nil {
		if name := strings.TrimSpace(s.SiteNamer.SiteName(ctx, resolvedURL)); name != "" {
			return name
		}
	}
	return fallbackSource
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func truncate(str string, max int) string {
	if runes := []rune(str); len(runes) > max {
		return string(runes[:max])
	}
	return str
}
