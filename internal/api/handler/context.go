package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/api/middleware"
	"github.com/gamesgrid/arise-api/internal/core/domain"
)

// ctxClaims rebuilds the identity claims injected by the Auth middleware.
// A missing userId means the middleware did not run on this route; fail with
// 401 before any service call.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	name, _ := c.Get(middleware.CtxName).(string)

	return domain.Claims{UserID: userID, Email: email, Name: name}, nil
}
