package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clubstack/inventory-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. The
// role proves the middleware ran; a token without a usable identity is
// structurally valid but operationally dead, so it is rejected with 401.
func ctxClaims(c echo.Context) (userID uint, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(uint)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}
	return userID, role, nil
}

// isAdmin reports whether the request carries the admin role.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == domain.RoleAdmin
}

// pathID parses the numeric :id (or named) path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
