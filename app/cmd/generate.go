// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/citypacks/app/feed"
	"github.com/Semior001/citypacks/app/pack"
	"github.com/Semior001/citypacks/app/store"
	"github.com/Semior001/citypacks/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
)

// Generate is a command to generate the city packs document.
type Generate struct {
	CitiesFile string `long:"cities-file" env:"CITIES_FILE" default:"citypacks.json" description:"path to the cities list"`
	OutFile    string `long:"out-file" env:"OUT_FILE" default:"citypacks.generated.json" description:"path to write the generated document"`

	Feed struct {
		BaseURL    string        `long:"base-url" env:"BASE_URL" default:"https://news.google.com/rss/search" description:"search feed endpoint"`
		Language   string        `long:"language" env:"LANGUAGE" default:"en-US" description:"hl locale parameter"`
		Country    string        `long:"country" env:"COUNTRY" default:"US" description:"gl locale parameter"`
		Edition    string        `long:"edition" env:"EDITION" default:"US:en" description:"ceid locale parameter"`
		Window     string        `long:"window" env:"WINDOW" default:"21d" description:"recency window for the search query"`
		MaxEntries int           `long:"max-entries" env:"MAX_ENTRIES" default:"8" description:"entries taken from each feed"`
		Timeout    time.Duration `long:"timeout" env:"TIMEOUT" default:"15s" description:"timeout for feed requests"`
	} `group:"feed" namespace:"feed" env-namespace:"FEED"`

	Resolver struct {
		Timeout     time.Duration `long:"timeout" env:"TIMEOUT" default:"15s" description:"timeout for resolving requests"`
		UserAgent   string        `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (compatible; YesterdayBot/1.0)" description:"user agent for outgoing requests"`
		Aggregator  string        `long:"aggregator" env:"AGGREGATOR" default:"news.google" description:"aggregator domain marker, unresolved links matching it are skipped"`
		GuessSource bool          `long:"guess-source" env:"GUESS_SOURCE" description:"fetch publisher pages to guess missing source names"`
	} `group:"resolver" namespace:"resolver" env-namespace:"RESOLVER"`

	MaxStories int `long:"max-stories" env:"MAX_STORIES" default:"4" description:"stories per city pack"`
}

// Execute runs the command.
func (g Generate) Execute(_ []string) error {
	lg := slog.Default()

	cities, err := store.Cities(g.CitiesFile)
	if err != nil {
		return fmt.Errorf("read cities: %w", err)
	}

	svc := &pack.Service{
		Log: lg.With(slog.String("prefix", "pack")),
		Feed: feed.NewClient(
			lg.With(slog.String("prefix", "feed")),
			g.client(lg, g.Feed.Timeout),
			feed.Opts{
				BaseURL:  g.Feed.BaseURL,
				Language: g.Feed.Language,
				Country:  g.Feed.Country,
				Edition:  g.Feed.Edition,
				Window:   g.Feed.Window,
				MaxItems: g.Feed.MaxEntries,
			},
		),
		Resolver: feed.NewResolver(
			lg.With(slog.String("prefix", "resolver")),
			g.client(lg, g.Resolver.Timeout),
			g.Resolver.Aggregator,
		),
		MaxStories: g.MaxStories,
	}

	if g.Resolver.GuessSource {
		svc.SiteNamer = feed.NewSiteNamer(
			lg.With(slog.String("prefix", "sitename")),
			g.client(lg, g.Resolver.Timeout),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc := svc.BuildDocument(ctx, cities)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}

	if err := store.WriteDocument(g.OutFile, doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	fmt.Printf("wrote %s with %d packs\n", g.OutFile, len(doc.Packs))
	return nil
}

// client builds an HTTP client with the configured user agent and
// debug-level request logging.
func (g Generate) client(lg *slog.Logger, timeout time.Duration) *http.Client {
	return requester.New(http.Client{Timeout: timeout},
		middleware.Header("User-Agent", g.Resolver.UserAgent),
		logx.LoggingRoundTripper(
			lg.With(slog.String("prefix", "http")),
			logx.RoundTripperOpts{Level: slog.LevelDebug},
		),
	).Client()
}
