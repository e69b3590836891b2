package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// errorResponse is the canonical error envelope: {"success": false,
// "message": "..."}. Error carries the underlying cause in development mode
// only. The game handlers keep their own legacy {message, error} envelope.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known domain
// errors to deterministic statuses, logs unexpected errors, and never leaks
// internals outside development mode.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c)

		resp := errorResponse{Message: msg}
		if development && detail != "" {
			resp.Error = detail
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, msg, detail string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejects).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound && he.Message == http.StatusText(http.StatusNotFound) {
			return he.Code, "Route not found", ""
		}
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password", ""
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts", ""
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, "Email already exists", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", ""
	case errors.Is(err, domain.ErrMissingSecret):
		return http.StatusInternalServerError, "Server configuration error", ""
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access forbidden", ""
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, "Game not found", ""
	case errors.Is(err, domain.ErrAlreadyJoined):
		return http.StatusBadRequest, "Already joined this game", ""
	case errors.Is(err, domain.ErrGameFull):
		return http.StatusBadRequest, "Game is full", ""
	case errors.Is(err, domain.ErrNotParticipant):
		return http.StatusBadRequest, "Not a participant of this game", ""
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "Post not found", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", err.Error()
}
