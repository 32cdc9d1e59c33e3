package dataset

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/city-rec/dropin-cli/internal/geo"
)

// Sources names the three dataset inputs. Each may be a local file path
// or an http(s) URL.
type Sources struct {
	Sessions   string
	Locations  string
	Facilities string
}

// Options configures a Loader.
type Options struct {
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// RequestsPerSecond throttles open-data portal fetches. Zero means
	// the default of 5.
	RequestsPerSecond float64
}

// Loader fetches and decodes the source datasets.
type Loader struct {
	client  *http.Client
	limiter *rate.Limiter
	opts    Options
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts Options) *Loader {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "dropin-cli/1.0"
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 5
	}
	return &Loader{
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 5),
		opts:    opts,
	}
}

// Load fetches all three sources concurrently and joins before returning
// the assembled snapshot. Loading is the one place genuine errors
// propagate: a failed source fails the load, and the caller decides
// whether to retry.
func (l *Loader) Load(ctx context.Context, src Sources) (*Snapshot, error) {
	snap := &Snapshot{LoadedAt: time.Now()}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := l.decodeJSON(gctx, src.Sessions, &snap.Sessions); err != nil {
			return eris.Wrap(err, "dataset: load sessions")
		}
		return nil
	})
	g.Go(func() error {
		if err := l.decodeJSON(gctx, src.Locations, &snap.Locations); err != nil {
			return eris.Wrap(err, "dataset: load locations")
		}
		return nil
	})
	g.Go(func() error {
		r, err := l.open(gctx, src.Facilities)
		if err != nil {
			return eris.Wrap(err, "dataset: load facilities")
		}
		defer r.Close() //nolint:errcheck
		facilities, err := geo.ParseFacilities(r)
		if err != nil {
			return eris.Wrap(err, "dataset: parse facilities")
		}
		snap.Facilities = facilities
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.FacilityIndex = geo.Index(snap.Facilities)

	zap.L().Info("dataset loaded",
		zap.Int("sessions", len(snap.Sessions)),
		zap.Int("locations", len(snap.Locations)),
		zap.Int("facilities", len(snap.Facilities)),
	)
	return snap, nil
}

// decodeJSON opens a source and decodes it as a JSON array into out.
func (l *Loader) decodeJSON(ctx context.Context, source string, out interface{}) error {
	r, err := l.open(ctx, source)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck

	if err := json.NewDecoder(r).Decode(out); err != nil {
		return eris.Wrapf(err, "decode %s", source)
	}
	return nil
}

// open returns a reader for a local path or an http(s) URL.
func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, eris.New("empty source")
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetch(ctx, source)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", source)
	}
	return f, nil
}

// fetch downloads a URL with rate limiting and retry on transient errors.
func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	var lastErr error
	for attempt := 0; attempt < l.opts.MaxRetries; attempt++ {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "rate limiter wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, eris.Wrapf(err, "build request for %s", url)
		}
		req.Header.Set("User-Agent", l.opts.UserAgent)

		resp, err := l.client.Do(req)
		if err != nil {
			lastErr = err
			zap.L().Warn("dataset fetch failed, retrying",
				zap.String("url", url),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("http %d from %s", resp.StatusCode, url)
			zap.L().Warn("dataset fetch returned retryable status",
				zap.String("url", url),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)
			backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, eris.Errorf("http %d from %s", resp.StatusCode, url)
		}

		return resp.Body, nil
	}
	return nil, eris.Wrapf(lastErr, "fetch %s after %d attempts", url, l.opts.MaxRetries)
}

// backoff sleeps 500ms, 1s, 2s... between attempts, or returns early on
// context cancellation.
func backoff(ctx context.Context, attempt int) {
	d := 500 * time.Millisecond << attempt
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
