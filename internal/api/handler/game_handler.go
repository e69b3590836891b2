package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamesgrid/arise-api/internal/api/metrics"
	"github.com/gamesgrid/arise-api/internal/core/domain"
	"github.com/gamesgrid/arise-api/internal/core/ports"
)

// GameHandler serves game CRUD and roster membership. These routes predate
// the {success, message} envelope: list/get return bare documents and errors
// use the legacy {message, error} shape, kept for client compatibility.
type GameHandler struct {
	gameService ports.GameService
}

func NewGameHandler(gameService ports.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// legacyError is the old error envelope used by the game routes.
type legacyError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// List handles GET /games with optional status, location and search filters.
// No matches yields an empty array, not a 404.
func (h *GameHandler) List(c echo.Context) error {
	filter := ports.GameFilter{
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}

	games, err := h.gameService.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error fetching games", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, games)
}

// ListByStatus handles GET /games/status/:status.
func (h *GameHandler) ListByStatus(c echo.Context) error {
	games, err := h.gameService.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error fetching games by status", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, games)
}

// Stats handles GET /games/stats/overview.
func (h *GameHandler) Stats(c echo.Context) error {
	overview, err := h.gameService.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error fetching statistics", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, overview)
}

// Get handles GET /games/:id.
func (h *GameHandler) Get(c echo.Context) error {
	game, err := h.gameService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, legacyError{Message: "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error fetching game", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, game)
}

// Create handles POST /games. Missing status, icon and capacity fall back to
// the defaults (upcoming, gamepad, 20).
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, legacyError{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, legacyError{Message: err.Error()})
	}

	game, err := h.gameService.Create(c.Request().Context(), ports.CreateGameInput{
		Title:           req.Title,
		Location:        req.Location,
		Date:            req.Date,
		Fee:             req.Fee,
		Status:          req.Status,
		Icon:            req.Icon,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error creating game", Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, game)
}

// Update handles PUT /games/:id — a full-document update.
func (h *GameHandler) Update(c echo.Context) error {
	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, legacyError{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, legacyError{Message: err.Error()})
	}

	err := h.gameService.Update(c.Request().Context(), c.Param("id"), ports.UpdateGameInput{
		Title:           req.Title,
		Location:        req.Location,
		Date:            req.Date,
		Fee:             req.Fee,
		Status:          req.Status,
		Icon:            req.Icon,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, legacyError{Message: "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error updating game", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, legacyError{Message: "Game updated successfully"})
}

// Delete handles DELETE /games/:id.
func (h *GameHandler) Delete(c echo.Context) error {
	if err := h.gameService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, legacyError{Message: "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error deleting game", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, legacyError{Message: "Game deleted successfully"})
}

// Join handles POST /games/:id/join. The roster entry is built from the
// caller's claims, never from the request body.
func (h *GameHandler) Join(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.gameService.Join(c.Request().Context(), c.Param("id"), claims); err != nil {
		switch {
		case errors.Is(err, domain.ErrGameNotFound):
			metrics.GameRosterChangesTotal.WithLabelValues("join", "not_found").Inc()
			return c.JSON(http.StatusNotFound, legacyError{Message: "Game not found"})
		case errors.Is(err, domain.ErrAlreadyJoined):
			metrics.GameRosterChangesTotal.WithLabelValues("join", "already_joined").Inc()
			return c.JSON(http.StatusBadRequest, legacyError{Message: "Already joined this game"})
		case errors.Is(err, domain.ErrGameFull):
			metrics.GameRosterChangesTotal.WithLabelValues("join", "full").Inc()
			return c.JSON(http.StatusBadRequest, legacyError{Message: "Game is full"})
		default:
			metrics.GameRosterChangesTotal.WithLabelValues("join", "error").Inc()
			return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error joining game", Error: err.Error()})
		}
	}

	metrics.GameRosterChangesTotal.WithLabelValues("join", "ok").Inc()
	return c.JSON(http.StatusOK, legacyError{Message: "Successfully joined the game"})
}

// Leave handles POST /games/:id/leave. Leaving a game never joined changes
// nothing and reports the fact.
func (h *GameHandler) Leave(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.gameService.Leave(c.Request().Context(), c.Param("id"), claims); err != nil {
		switch {
		case errors.Is(err, domain.ErrGameNotFound):
			metrics.GameRosterChangesTotal.WithLabelValues("leave", "not_found").Inc()
			return c.JSON(http.StatusNotFound, legacyError{Message: "Game not found"})
		case errors.Is(err, domain.ErrNotParticipant):
			metrics.GameRosterChangesTotal.WithLabelValues("leave", "not_participant").Inc()
			return c.JSON(http.StatusBadRequest, legacyError{Message: "Not a participant of this game"})
		default:
			metrics.GameRosterChangesTotal.WithLabelValues("leave", "error").Inc()
			return c.JSON(http.StatusInternalServerError, legacyError{Message: "Error leaving game", Error: err.Error()})
		}
	}

	metrics.GameRosterChangesTotal.WithLabelValues("leave", "ok").Inc()
	return c.JSON(http.StatusOK, legacyError{Message: "Successfully left the game"})
}
