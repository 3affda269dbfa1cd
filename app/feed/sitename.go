package feed

import (
	"context"
	"net/http"

	"github.com/go-shiori/go-readability"
	"golang.org/x/exp/slog"
)

// SiteNamer guesses a publisher name by fetching the resolved page and
// reading its metadata. Best-effort: returns an empty string on any failure.
type SiteNamer struct {
	log *slog.Logger
	cl  *http.Client
}

// NewSiteNamer creates new SiteNamer.
func NewSiteNamer(lg *slog.Logger, cl *http.Client) *SiteNamer {
	return &SiteNamer{log: lg, cl: cl}
}

// SiteName returns the site name of the page at the given URL, or an empty
// string if the page can't be fetched or carries no usable name.
func (s *SiteNamer) SiteName(ctx context.Context, u string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return ""
	}

	resp, err := s.cl.Do(req)
	if err != nil {
		s.log.DebugCtx(ctx, "failed to fetch page for site name",
			slog.String("url", u), slog.Any("err", err))
		return ""
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return ""
	}

	doc, err := readability.FromReader(resp.Body, nil)
	if err != nil {
		s.log.DebugCtx(ctx, "failed to parse page for site name",
			slog.String("url", u), slog.Any("err", err))
		return ""
	}

	return doc.SiteName
}
