package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zacatour/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	reactionStore services.ReactionStore
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(reactions services.ReactionStore) *LikeHandler {
	return &LikeHandler{reactionStore: reactions}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
	g.GET("/posts/:post_id/like/status", h.GetLikeStatus)
}

// ToggleLike likes a post, or undoes an existing like
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	liked, total, err := h.reactionStore.ToggleLike(c.Request().Context(), postID, currentUserID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"liked":       liked,
			"total_likes": total,
		},
	})
}

// GetLikeStatus reports whether the current user has liked the post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	liked, err := h.reactionStore.HasLiked(c.Request().Context(), postID, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "has_liked": liked})
}
