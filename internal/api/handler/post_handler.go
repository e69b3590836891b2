package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// PostHandler serves post CRUD.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type postsResponse struct {
	Success bool           `json:"success"`
	Data    []*domain.Post `json:"data"`
}

type postResponse struct {
	Success bool         `json:"success"`
	Data    *domain.Post `json:"data"`
}

// List handles GET /posts, newest first.
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postsResponse{Success: true, Data: posts})
}

// Get handles GET /posts/:id.
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postResponse{Success: true, Data: post})
}

// Create handles POST /posts. The author is the authenticated caller.
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  claims,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, postResponse{Success: true, Data: post})
}

// Update handles PUT /posts/:id.
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postService.Update(c.Request().Context(), c.Param("id"), req.Title, req.Content); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Post updated successfully"})
}

// Delete handles DELETE /posts/:id.
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Post deleted successfully"})
}
