package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
)

// RateLimitConfig configures per-client token buckets.
type RateLimitConfig struct {
	PerSecond  float64
	Burst      int
	MaxClients int
	ClientTTL  time.Duration
}

// RateLimiter keeps one token bucket per client address. Idle clients are
// evicted after ClientTTL and the table never grows past MaxClients.
type RateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients *expirable.LRU[string, *rate.Limiter]
}

// NewRateLimiter creates a RateLimiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.MaxClients < 1 {
		cfg.MaxClients = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(cfg.PerSecond),
		burst:   cfg.Burst,
		clients: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.ClientTTL),
	}
}

// Reserve takes a token for key. When none is available it returns false and
// the wait until the next token.
func (l *RateLimiter) Reserve(key string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	lim, ok := l.clients.Get(key)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients.Add(key, lim)
	}
	l.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if d := r.DelayFrom(now); d > 0 {
		r.CancelAt(now)
		return false, d
	}
	return true, 0
}

// Clients returns the number of tracked clients.
func (l *RateLimiter) Clients() int {
	return l.clients.Len()
}

// RateLimit returns Echo middleware rejecting clients over their budget with
// 429 Too Many Requests and a Retry-After header.
func RateLimit(l *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, wait := l.Reserve(c.RealIP(), time.Now())
			if ok {
				return next(c)
			}

			metrics.RateLimitedTotal.WithLabelValues(routePath(c)).Inc()
			c.Response().Header().Set("Retry-After", strconv.Itoa(max(1, int(math.Ceil(wait.Seconds())))))
			return c.JSON(http.StatusTooManyRequests, map[string]any{
				"title":  http.StatusText(http.StatusTooManyRequests),
				"status": http.StatusTooManyRequests,
				"detail": "rate limit exceeded, retry later",
			})
		}
	}
}
