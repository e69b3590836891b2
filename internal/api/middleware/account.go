package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// RequireAccount is the opt-in extension of Auth: it re-fetches the user row
// behind the verified claims, so a token for a deleted account stops working
// before its expiry. Must run after Auth on the chain.
func RequireAccount(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			if _, err := users.FindByID(c.Request().Context(), userID); err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Authentication error")
			}

			return next(c)
		}
	}
}
