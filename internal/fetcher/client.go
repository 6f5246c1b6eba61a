package fetcher

import (
	"context"
	"log"
	"strings"
	"time"

	"StockSentry/internal/cache"
	"StockSentry/internal/ratelimit"
)

// Client wraps a Fetcher with response caching and global rate limiting.
// A valid cache hit returns without touching the network or consuming
// any rate-limit delay.
type Client struct {
	fetcher Fetcher
	store   cache.Store
	limiter *ratelimit.Limiter
	ttl     time.Duration

	now func() time.Time
}

func NewClient(f Fetcher, store cache.Store, limiter *ratelimit.Limiter, ttl time.Duration) *Client {
	return &Client{
		fetcher: f,
		store:   store,
		limiter: limiter,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Fetch returns the raw provider payload for ticker, from cache when a
// non-expired entry exists, otherwise from the network after waiting out
// the rate limit. Successful network responses overwrite the cache
// unconditionally. Cache store failures are logged and degrade to the
// network path, never to a fetch failure.
func (c *Client) Fetch(ctx context.Context, ticker string) ([]byte, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if e, err := c.store.Get(ctx, ticker); err != nil {
		log.Printf("[WARN] cache read for %s: %v", ticker, err)
	} else if e != nil {
		if len(e.Payload) > 0 && c.now().Sub(e.StoredAt) < c.ttl {
			return e.Payload, nil
		}
		// Expired or corrupt entries are treated as absent and purged.
		if err := c.store.Delete(ctx, ticker); err != nil {
			log.Printf("[WARN] cache purge for %s: %v", ticker, err)
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := c.fetcher.FetchDailySeries(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, &cache.Entry{Ticker: ticker, StoredAt: c.now(), Payload: payload}); err != nil {
		log.Printf("[WARN] cache write for %s: %v", ticker, err)
	}
	return payload, nil
}
