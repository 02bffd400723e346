package middleware

import (
    "strconv"
    "sync"
    "time"

    "github.com/labstack/echo/v4"
    "golang.org/x/time/rate"

    "github.com/iliyamo/hotel-reservation/internal/config"
)

// localBuckets keeps one rate.Limiter per key for single-instance
// deployments.  Keys idle for longer than cfg.TTL are pruned lazily.
type localBuckets struct {
    cfg      config.RateLimitConfig
    mu       sync.Mutex
    visitors map[string]*visitor
    now      func() time.Time
    lastGC   time.Time
}

type visitor struct {
    limiter  *rate.Limiter
    lastSeen time.Time
}

func newLocalBuckets(cfg config.RateLimitConfig) *localBuckets {
    return &localBuckets{cfg: cfg, visitors: make(map[string]*visitor), now: time.Now}
}

func (b *localBuckets) get(key string) *rate.Limiter {
    b.mu.Lock()
    defer b.mu.Unlock()

    now := b.now()
    if now.Sub(b.lastGC) > b.cfg.TTL {
        for k, v := range b.visitors {
            if now.Sub(v.lastSeen) > b.cfg.TTL {
                delete(b.visitors, k)
            }
        }
        b.lastGC = now
    }

    v, ok := b.visitors[key]
    if !ok {
        v = &visitor{limiter: rate.NewLimiter(rate.Limit(b.cfg.PerSecond()), b.cfg.Capacity)}
        b.visitors[key] = v
    }
    v.lastSeen = now
    return v.limiter
}

func (b *localBuckets) middleware() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            lim := b.get(buildRateKey(b.cfg, c))
            r := lim.ReserveN(b.now(), 1)
            c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(b.cfg.Capacity))
            if delay := r.DelayFrom(b.now()); delay > 0 {
                r.CancelAt(b.now())
                c.Response().Header().Set("X-RateLimit-Remaining", "0")
                return tooManyRequests(c, delay)
            }
            remaining := int(lim.TokensAt(b.now()))
            if remaining < 0 {
                remaining = 0
            }
            c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
            return next(c)
        }
    }
}
