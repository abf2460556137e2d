// internal/agent/ratelimit.go
// Redis-backed fixed-window rate limiter for registration.

package agent

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/olavblj/clawdr/internal/common/utils"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

// RateLimiter limits how often a single caller may register new agents.
// A nil *RateLimiter or nil Redis client disables limiting entirely.
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRateLimiter(client *redis.Client, window time.Duration, max int) *RateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Hour
	}
	if max <= 0 {
		max = 1
	}
	return &RateLimiter{client: client, window: window, max: max}
}

// Allow reports whether the caller identified by key is within its window.
// Fails open on Redis errors so a cache outage never blocks registration.
func (l *RateLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	count, err := l.client.Eval(ctx, rateLimitScript, []string{"register:rl:" + key}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

// Limit wraps a handler with per-IP rate limiting.
func (l *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r.Context(), clientIP(r)) {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many registrations, try again later")
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
