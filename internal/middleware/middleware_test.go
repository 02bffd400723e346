package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func serve(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAndRole(t *testing.T) {
	e := echo.New()
	g := e.Group("/v1", JWTAuth("secret"), RequireRole(utils.RoleStaff))
	g.GET("/whoami", func(c echo.Context) error { return c.String(http.StatusOK, Subject(c)) })

	staff, _ := utils.NewAccessToken("secret", "admin", utils.RoleStaff, time.Minute)
	guest, _ := utils.NewAccessToken("secret", "someone", "GUEST", time.Minute)
	forged, _ := utils.NewAccessToken("other", "admin", utils.RoleStaff, time.Minute)

	tests := []struct {
		name  string
		token string
		code  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"forged", forged.Token, http.StatusUnauthorized},
		{"wrong role", guest.Token, http.StatusForbidden},
		{"staff", staff.Token, http.StatusOK},
	}
	for _, tt := range tests {
		rec := serve(e, http.MethodGet, "/v1/whoami", tt.token)
		if rec.Code != tt.code {
			t.Errorf("%s: status %d, want %d", tt.name, rec.Code, tt.code)
		}
		if tt.code == http.StatusOK && rec.Body.String() != "admin" {
			t.Errorf("%s: subject %q", tt.name, rec.Body.String())
		}
	}
}

func TestLocalTokenBucket(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            5 * time.Hour,
		KeyStrategy:    "ip",
		Prefix:         "test",
	}
	e := echo.New()
	e.Use(NewTokenBucket(cfg, nil, discard))
	e.GET("/rooms", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if rec := serve(e, http.MethodGet, "/rooms", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rec.Code)
		}
	}
	rec := serve(e, http.MethodGet, "/rooms", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" || rec.Header().Get("X-RateLimit-Limit") != "2" {
		t.Fatalf("headers = %v", rec.Header())
	}
}

func TestDisabledTokenBucket(t *testing.T) {
	e := echo.New()
	e.Use(NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil, discard))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	for i := 0; i < 10; i++ {
		if rec := serve(e, http.MethodGet, "/", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d limited", i)
		}
	}
}

func TestRateKeyStrategies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/reservations")
	c.Set("user_id", "admin")

	tests := map[string]string{
		"ip":            "rl:ip:10.0.0.7",
		"ip_user":       "rl:ip:10.0.0.7:user:admin",
		"ip_user_route": "rl:ip:10.0.0.7:user:admin:route:POST /v1/reservations",
	}
	for strategy, want := range tests {
		got := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}, c)
		if got != want {
			t.Errorf("%s: key %q, want %q", strategy, got, want)
		}
	}
}

func TestCachePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"rates":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	status, got, body, ok := decodePayload(bs)
	if !ok || status != http.StatusOK || got.Get("Content-Type") != "application/json" || string(body) != `{"rates":[]}` {
		t.Fatalf("decode = %d %v %q %v", status, got, body, ok)
	}
	if _, _, _, ok := decodePayload(bs[:5]); ok {
		t.Fatal("short payload decoded")
	}
}

func TestCaptureWriterLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}
	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("def"))
	if cw.buf.String() != "abcd" || !cw.truncated() {
		t.Fatalf("buf = %q truncated = %v", cw.buf.String(), cw.truncated())
	}
	if !bytes.Equal(rec.Body.Bytes(), []byte("abcdef")) {
		t.Fatalf("client body = %q", rec.Body.String())
	}
}
