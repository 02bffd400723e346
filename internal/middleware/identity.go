package middleware

import "github.com/labstack/echo/v4"

// Subject returns the authenticated caller stored by JWTAuth, or "anon"
// for unauthenticated requests.  Rate limit keys and audit log lines use it.
func Subject(c echo.Context) string {
    if s, ok := c.Get("user_id").(string); ok && s != "" {
        return s
    }
    return "anon"
}
