package limiter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token bucket per client ip and forgets clients that
// were idle for longer than ttl.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

func NewVisitors(rps int, burst int, ttl time.Duration) *Visitors {
	return &Visitors{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Allow reports whether ip may make a request now.
func (v *Visitors) Allow(ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	vis, ok := v.visitors[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.visitors[ip] = vis
	}
	vis.lastSeen = now

	return vis.limiter.AllowN(now, 1)
}

// Cleanup drops visitors idle for longer than ttl and returns how many.
func (v *Visitors) Cleanup() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	now := v.now()
	for ip, vis := range v.visitors {
		if now.Sub(vis.lastSeen) > v.ttl {
			delete(v.visitors, ip)
			removed++
		}
	}
	return removed
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Middleware rejects requests over the limit with 429.
func (v *Visitors) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v.Allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

// Sweep drops idle visitors every interval until ctx is done.
func (v *Visitors) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Cleanup()
		}
	}
}

// Limit returns a per-client rate limiting middleware. Idle clients are
// swept every ttl until ctx is done. A non-positive ttl disables the sweep.
func Limit(ctx context.Context, rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	v := NewVisitors(rps, burst, ttl)
	if ttl > 0 {
		go v.Sweep(ctx, ttl)
	}

	return v.Middleware()
}
