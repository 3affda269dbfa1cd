// Package logx contains logging middleware for HTTP clients.
package logx

import (
	"net/http"
	"time"

	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
)

// RoundTripperOpts contains options for client logger.
type RoundTripperOpts struct {
	Level slog.Level
}

// LoggingRoundTripper logs every client request with its outcome. Bodies are
// not logged, the pipeline only cares about URLs and statuses.
func LoggingRoundTripper(lg *slog.Logger, opts RoundTripperOpts) middleware.RoundTripperHandler {
	return func(next http.RoundTripper) http.RoundTripper {
		return middleware.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			lg.LogAttrs(req.Context(), opts.Level, "request sent",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
			)

			start := time.Now()
			resp, err := next.RoundTrip(req)
			elapsed := time.Since(start)

			if err != nil {
				lg.LogAttrs(req.Context(), opts.Level, "request failed",
					slog.String("url", req.URL.String()),
					slog.Any("err", err),
					slog.Duration("elapsed", elapsed),
				)
				return nil, err
			}

			// resp.Request points at the last request of the redirect
			// chain, so the final URL is visible in the logs
			lg.LogAttrs(req.Context(), opts.Level, "response received",
				slog.Int("status", resp.StatusCode),
				slog.String("final_url", resp.Request.URL.String()),
				slog.Duration("elapsed", elapsed),
			)

			return resp, nil
		})
	}
}
