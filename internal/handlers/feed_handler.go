package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
	"github.com/zacatour/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedRanker     services.FeedRanker
	reactionStore  services.ReactionStore
	userRepository repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(ranker services.FeedRanker, reactions services.ReactionStore, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		feedRanker:     ranker,
		reactionStore:  reactions,
		userRepository: userRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// EnrichedPost is a post with author info and user-specific flags
type EnrichedPost struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
}

// GetFeed returns the ranked feed for the current user, optionally
// filtered by place category
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	category := models.Category(c.QueryParam("categoria"))

	posts, err := h.feedRanker.Rank(c.Request().Context(), currentUserID, category)
	if err != nil {
		return toHTTPError(err)
	}

	// Build the author map once per distinct author
	userMap := make(map[uint]models.UserCompact)
	for _, p := range posts {
		if _, ok := userMap[p.UserID]; ok {
			continue
		}
		if user, err := h.userRepository.GetUserByID(p.UserID); err == nil {
			userMap[p.UserID] = user.ToCompact()
		}
	}

	enrichedPosts := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		liked := false
		if currentUserID != 0 {
			liked, _ = h.reactionStore.HasLiked(c.Request().Context(), p.ID.Hex(), currentUserID)
		}
		enrichedPosts[i] = EnrichedPost{
			Post:    p,
			Author:  userMap[p.UserID],
			IsLiked: liked,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": enrichedPosts,
		},
	})
}
