package feed

import (
	"context"
	"net/http"
	"strings"

	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// Resolver follows redirects on entry links to obtain canonical publisher
// URLs. It never fails: on any transport error the original link is returned.
type Resolver struct {
	log        *slog.Logger
	cl         *http.Client
	aggregator string
	cache      cache.Cache[string, string]
}

// NewResolver creates new Resolver. The aggregator argument is the substring
// identifying the feed provider's own redirect domain.
func NewResolver(lg *slog.Logger, cl *http.Client, aggregator string) *Resolver {
	return &Resolver{
		log:        lg,
		cl:         cl,
		aggregator: aggregator,
		cache: cache.NewCache[string, string]().
			WithLRU().
			WithMaxKeys(1000),
	}
}

// Resolve returns the final URL after following redirects, or the original
// link if the request fails. Results are memoized for the run, so a link
// shared between city feeds is resolved once.
func (r *Resolver) Resolve(ctx context.Context, link string) string {
	if resolved, ok := r.cache.Get(link); ok {
		return resolved
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		r.log.WarnCtx(ctx, "bad entry link", slog.String("link", link), slog.Any("err", err))
		return link
	}

	resp, err := r.cl.Do(req)
	if err != nil {
		r.log.WarnCtx(ctx, "failed to resolve link", slog.String("link", link), slog.Any("err", err))
		return link
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			r.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	resolved := resp.Request.URL.String()
	r.cache.Set(link, resolved, 0)

	return resolved
}

// Aggregator reports whether the URL still points at the feed provider's own
// domain, meaning redirect resolution did not reach a publisher.
func (r *Resolver) Aggregator(u string) bool { return strings.Contains(u, r.aggregator) }
