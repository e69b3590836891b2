package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OwnProfile rejects mutations of any profile other than the caller's own:
// the userId claim must match the :id path parameter. Games deliberately do
// not carry an equivalent check — any authenticated user may mutate any game.
func OwnProfile() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" || userID != c.Param("id") {
				return echo.NewHTTPError(http.StatusForbidden, "Can only modify own resource")
			}
			return next(c)
		}
	}
}
