package config

// Redis backs the shared rate limiter and the rate card cache.  Both degrade
// gracefully when it is unreachable, so a failed ping yields a nil client
// instead of an error.

import (
    "context"
    "crypto/tls"
    "log/slog"
    "time"

    "github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the optional Redis server.
type RedisConfig struct {
    Enabled  bool
    Addr     string
    Password string
    DB       int
    TLS      bool
}

// LoadRedisConfig reads REDIS_ENABLED, REDIS_HOST/REDIS_PORT or REDIS_ADDR,
// REDIS_PASSWORD, REDIS_DB and REDIS_TLS.  Host and port take precedence
// over the addr shorthand.
func LoadRedisConfig() RedisConfig {
    addr := envStr("REDIS_ADDR", "localhost:6379")
    host, port := envStr("REDIS_HOST", ""), envStr("REDIS_PORT", "")
    if host != "" && port != "" {
        addr = host + ":" + port
    }
    return RedisConfig{
        Enabled:  envBool("REDIS_ENABLED", true),
        Addr:     addr,
        Password: envStr("REDIS_PASSWORD", ""),
        DB:       envInt("REDIS_DB", 0),
        TLS:      envBool("REDIS_TLS", false),
    }
}

// NewRedisClient connects to Redis and pings it with a short timeout.  The
// returned client is nil when Redis is disabled or unreachable.
func NewRedisClient(cfg RedisConfig, log *slog.Logger) *redis.Client {
    if !cfg.Enabled {
        log.Info("[redis] disabled; using in-process rate limiting, no response cache")
        return nil
    }
    var tlsConf *tls.Config
    if cfg.TLS {
        tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
    }
    client := redis.NewClient(&redis.Options{
        Addr:      cfg.Addr,
        Password:  cfg.Password,
        DB:        cfg.DB,
        TLSConfig: tlsConf,
    })
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        log.Warn("[redis] ping failed; continuing without redis", "addr", cfg.Addr, "err", err)
        _ = client.Close()
        return nil
    }
    log.Info("[redis] connected", "addr", cfg.Addr, "db", cfg.DB)
    return client
}
