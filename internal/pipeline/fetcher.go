package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/util"
	"github.com/credlens/credlens/internal/worker"
)

// Fetcher retrieves article HTML. Every fetch goes through robots.txt and
// the per-domain rate limiter; successful responses are cached so repeated
// verification of the same URL stays off the network.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	store      cache.Cache
}

// NewFetcher creates a fetcher. A nil store disables caching.
func NewFetcher(cfg model.HTTPConfig, store cache.Cache) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    util.NewRobotsChecker(util.NormalizeUserAgent(cfg.UserAgent), cfg.Timeout),
		limiter:   worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		store:     store,
	}
}

// FetchResult is a fetched page
type FetchResult struct {
	HTML     string `json:"html"`
	FinalURL string `json:"final_url"`
}

// Fetch retrieves the page at rawURL, honoring robots.txt and the domain's
// rate limit
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	key := cache.Key("url", rawURL)
	if f.store != nil {
		if data, found := f.store.Get(key); found {
			var result FetchResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("fetch disallowed by robots.txt: %s", rawURL)
	}

	if crawlDelay > 10*time.Second {
		crawlDelay = 10 * time.Second
	}
	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
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

	result := &FetchResult{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}

	if f.store != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = f.store.Set(key, data, 0)
		}
	}

	return result, nil
}

const maxFetchAttempts = 3

// fetchSleepFunc is swapped out by tests
var fetchSleepFunc = time.Sleep

// FetchWithRetry fetches with exponential backoff on transient failures.
// Permanent failures (4xx other than 429) return immediately.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	var lastErr error

	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		result, err := f.Fetch(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableFetchError(err) {
			return nil, err
		}
		if attempt < maxFetchAttempts {
			fetchSleepFunc(time.Duration(attempt) * time.Second)
		}
	}

	return nil, lastErr
}

// isRetryableFetchError reports whether a fetch error is worth retrying:
// 5xx statuses, 429, and connection-level failures
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	for _, status := range []string{"status: 500", "status: 502", "status: 503", "status: 504", "status: 429"} {
		if strings.Contains(msg, status) {
			return true
		}
	}

	if strings.HasPrefix(msg, "fetch: ") &&
		(strings.Contains(msg, "connection refused") ||
			strings.Contains(msg, "connection reset") ||
			strings.Contains(msg, "timeout") ||
			strings.Contains(msg, "EOF")) {
		return true
	}

	return false
}
