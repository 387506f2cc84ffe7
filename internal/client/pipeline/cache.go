package pipeline

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"dating/internal/errors"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how long a cached GET response is served.
const DefaultCacheTTL = 30 * time.Second

type cacheEntry struct {
	resp    *Response
	expires time.Time
}

// ResponseCache serves repeated GETs from memory for a bounded time. Entries are keyed by
// path and credential, so one identity never sees another's responses. Any successful
// mutation clears it, as does Clear (called on session change). Identical GETs in flight
// at the same time share one dispatch.
type ResponseCache struct {
	ttl     time.Duration
	now     func() time.Time
	entries *xsync.MapOf[string, cacheEntry]
	group   singleflight.Group
	// generation is bumped by Clear so a dispatch that started before it is not stored.
	generation atomic.Uint64
	// clearMu makes Clear exclusive with the generation check and store of a response.
	clearMu sync.RWMutex
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &ResponseCache{
		ttl:     ttl,
		now:     time.Now,
		entries: xsync.NewMapOf[string, cacheEntry](),
	}
}

// Clear drops every entry.
func (c *ResponseCache) Clear() {
	c.clearMu.Lock()
	defer c.clearMu.Unlock()

	c.generation.Add(1)
	c.entries.Clear()
}

// Len returns the number of stored entries, expired ones included.
func (c *ResponseCache) Len() int {
	return c.entries.Size()
}

// Transformer serves and stores GET responses, and clears the cache after a successful
// non-GET request.
func (c *ResponseCache) Transformer() Transformer {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		if req.Method != http.MethodGet {
			resp, err := next(ctx, req)
			if err == nil && resp.Status < http.StatusBadRequest {
				c.Clear()
			}

			return resp, err
		}

		key := req.Header.Get("Authorization") + " " + req.Path
		if entry, ok := c.entries.Load(key); ok {
			if c.now().Before(entry.expires) {
				return entry.resp.clone(), nil
			}
			c.entries.Delete(key)
		}

		// The shared dispatch outlives any one caller; each caller still honours its own ctx.
		results := c.group.DoChan(key, func() (any, error) {
			// A dispatch that finished between the lookup above and here already stored it.
			if entry, ok := c.entries.Load(key); ok && c.now().Before(entry.expires) {
				return entry.resp, nil
			}

			generation := c.generation.Load()

			resp, err := next(context.WithoutCancel(ctx), req)
			if err != nil {
				return resp, err
			}

			if resp.Status < http.StatusMultipleChoices {
				c.store(key, generation, resp)
			}

			return resp, nil
		})

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case result := <-results:
			resp, _ := result.Val.(*Response)
			if resp != nil {
				resp = resp.clone()
			}

			return resp, result.Err
		}
	}
}

// store keeps resp unless Clear ran after its dispatch began.
func (c *ResponseCache) store(key string, generation uint64, resp *Response) {
	c.clearMu.RLock()
	defer c.clearMu.RUnlock()

	if c.generation.Load() != generation {
		return
	}
	c.entries.Store(key, cacheEntry{resp: resp.clone(), expires: c.now().Add(c.ttl)})
}
