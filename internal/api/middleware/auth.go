package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/api/metrics"
	"github.com/gamesgrid/arise-api/internal/auth"
	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// Context keys set by Auth on successful verification.
const (
	CtxUserID = "userId"
	CtxEmail  = "email"
	CtxName   = "name"
)

// Auth validates the bearer token and injects the identity claims into the
// echo context. It is the only token checker in the service; every protected
// route goes through it. Verification is purely cryptographic — no database
// lookup — so a valid token is trusted even if the account was since changed
// (pair with RequireAccount where that matters).
//
// Failure modes map to distinct responses:
//
//	missing token        → 401 Access token required
//	malformed/bad sig    → 401 Invalid token
//	expired              → 401 Token expired
//	anything else        → 403 Token verification failed
func Auth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
				case errors.Is(err, auth.ErrTokenInvalid):
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
				case errors.Is(err, domain.ErrMissingSecret):
					metrics.TokenVerificationsTotal.WithLabelValues("failed").Inc()
					return echo.NewHTTPError(http.StatusInternalServerError, "Server configuration error")
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("failed").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "Token verification failed")
				}
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxName, claims.Name)

			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other shape yields the empty string.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
