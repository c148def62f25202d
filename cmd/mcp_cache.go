package cmd

import (
	"sync"
	"time"

	"github.com/mj1618/desktop-blur/internal/model"
	"github.com/mj1618/desktop-blur/internal/platform"
)

// mcpWindowCache is a TTL cache in front of a WindowLister. It always
// enumerates every window and filters per request, so one entry serves all
// option combinations.
type mcpWindowCache struct {
	mu        sync.Mutex
	lister    platform.WindowLister
	windows   []model.Window
	timestamp time.Time
	ttl       time.Duration
	now       func() time.Time
}

// newMCPWindowCache creates a new cache. A ttl of 0 disables caching.
func newMCPWindowCache(lister platform.WindowLister, ttl time.Duration) *mcpWindowCache {
	return &mcpWindowCache{
		lister: lister,
		ttl:    ttl,
		now:    time.Now,
	}
}

// ListWindows returns cached windows if within TTL, otherwise lists fresh.
func (c *mcpWindowCache) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl == 0 {
		return c.lister.ListWindows(opts)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.windows == nil || c.now().Sub(c.timestamp) >= c.ttl {
		windows, err := c.lister.ListWindows(platform.ListOptions{})
		if err != nil {
			return nil, err
		}
		c.windows = windows
		c.timestamp = c.now()
	}
	return opts.Filter(c.windows), nil
}

// invalidate drops the cached list.
func (c *mcpWindowCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.windows = nil
}
