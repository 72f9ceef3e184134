package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ppiankov/gleaner/internal/model"
	"github.com/ppiankov/gleaner/internal/worker"
)

// ErrRobotsDisallowed reports a URL the site's robots.txt forbids.
var ErrRobotsDisallowed = errors.New("disallowed by robots.txt")

// Fetcher retrieves listing pages politely: per-domain rate limiting,
// robots.txt compliance, capped redirects and body size, and retries on
// transient failures.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	robots    *Robots
	limiter   *worker.Limiter
}

// New creates a fetcher from the HTTP configuration.
func New(cfg model.HTTPConfig) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   worker.NewLimiter(cfg.RatePerSecond, cfg.RateBurst),
	}
	if cfg.RespectRobots {
		f.robots = NewRobots(cfg.UserAgent, cfg.Timeout)
	}
	return f
}

// Result is one fetched listing page.
type Result struct {
	Title      string // listing title extracted from the HTML
	HTML       string
	FinalURL   string
	StatusCode int
}

// FetchTitle retrieves the page and pulls the listing title out of it.
func (f *Fetcher) FetchTitle(ctx context.Context, rawURL string) (*Result, error) {
	var crawlDelay time.Duration
	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrRobotsDisallowed)
		}
		crawlDelay = delay
	}
	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	res, err := f.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	res.Title = Title(res.HTML)
	if res.Title == "" {
		return nil, fmt.Errorf("%s: no title found in page", res.FinalURL)
	}
	return res, nil
}

// fetchSleepFunc is replaced in tests to skip backoff waits.
var fetchSleepFunc = time.Sleep

// FetchWithRetry retrieves the URL, retrying transient failures up to
// three attempts with linear backoff.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*Result, error) {
	const attempts = 3
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := f.fetch(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !isRetryableFetchError(err) || attempt == attempts {
			break
		}
		fetchSleepFunc(time.Duration(attempt) * 500 * time.Millisecond)
	}
	return nil, lastErr
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Result{
		HTML:       string(body),
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}, nil
}

// isRetryableFetchError reports whether the failure is worth another
// attempt: connection trouble, 429, or a 5xx status.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") {
		return true
	}
	if strings.Contains(msg, "unexpected status: 429") {
		return true
	}
	for _, code := range []string{"500", "502", "503", "504"} {
		if strings.Contains(msg, "unexpected status: "+code) {
			return true
		}
	}
	return false
}
