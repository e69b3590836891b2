package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// UserHandler serves profile reads and owner-scoped mutations. The router
// wraps the mutating routes with the ownership guard; by the time Update or
// Delete runs, the target id is known to be the caller's own.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type usersResponse struct {
	Success bool           `json:"success"`
	Data    []*domain.User `json:"data"`
}

type userResponse struct {
	Success bool         `json:"success"`
	Data    *domain.User `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List handles GET /users. Password hashes never serialize (json:"-").
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No users found")
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, Data: users})
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, Data: user})
}

// Update handles PUT /users/:id — a partial update of name, email and/or
// password.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	if req.Password != nil && len(*req.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "Password must be at least 6 characters long")
	}

	err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User updated successfully"})
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "User deleted successfully"})
}
