package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// AuthHandler issues access tokens to front-desk staff.  There is a single
// staff account configured through STAFF_USER and STAFF_PASSWORD_HASH.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   string    `json:"user"`
	Role   string    `json:"role"`
	Access tokenPart `json:"access"`
}

// Login: verify staff credentials and return an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	req.Username = strings.TrimSpace(req.Username)

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Cfg.StaffUser)) == 1
	passOK := utils.VerifyPassword(h.Cfg.StaffPassHash, req.Password)
	if !userOK || !passOK {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Username, utils.RoleStaff, h.Cfg.AccessTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:   req.Username,
		Role:   utils.RoleStaff,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me returns the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, echo.Map{"user": middleware.Subject(c), "role": role})
}
