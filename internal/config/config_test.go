package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STAFF_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	for _, k := range []string{"APP_ENV", "APP_PORT", "ACCESS_TOKEN_TTL_MIN", "STAFF_USER", "SEED_CATALOG", "RABBITMQ_ENABLED", "EVENTS_QUEUE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Env != "dev" || cfg.Port != "8080" || cfg.StaffUser != "admin" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AccessTTL != time.Hour {
		t.Fatalf("AccessTTL = %v", cfg.AccessTTL)
	}
	if !cfg.SeedCatalog || cfg.Events.Enabled || cfg.Events.Queue != "hotel.reservations" {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
	if cfg.IsProduction() {
		t.Fatal("dev reported as production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STAFF_PASSWORD_HASH", "hash")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("SEED_CATALOG", "off")
	t.Setenv("RABBITMQ_ENABLED", "YES")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()
	if !cfg.IsProduction() || cfg.AccessTTL != 15*time.Minute {
		t.Fatalf("overrides ignored: %+v", cfg)
	}
	if cfg.SeedCatalog || !cfg.Events.Enabled {
		t.Fatalf("bool parsing: seed=%v events=%v", cfg.SeedCatalog, cfg.Events.Enabled)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("malformed int should fall back, got %d", cfg.BcryptCost)
	}
}

func TestRateLimitNormalization(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "")

	c := LoadRateLimitConfig()
	if c.Capacity != 1 || c.RefillTokens != 1 {
		t.Fatalf("capacity/refill not clamped: %+v", c)
	}
	if c.TTL != 10*time.Second {
		t.Fatalf("TTL = %v, want 5x refill interval", c.TTL)
	}
	if c.PerSecond() != 0.5 {
		t.Fatalf("PerSecond = %v", c.PerSecond())
	}
}

func TestRedisAddrPrecedence(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	if got := LoadRedisConfig().Addr; got != "cache:6380" {
		t.Fatalf("Addr = %q", got)
	}
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	if got := LoadRedisConfig().Addr; got != "redis:6379" {
		t.Fatalf("Addr = %q", got)
	}
}

func TestCacheMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head,,")
	c := LoadCacheConfig()
	if !c.Methods["GET"] || !c.Methods["HEAD"] || len(c.Methods) != 2 {
		t.Fatalf("Methods = %v", c.Methods)
	}
}
