package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
	"github.com/zacatour/backend/internal/services"
)

// PostHandler handles HTTP requests for review posts
type PostHandler struct {
	reviewPublisher services.ReviewPublisher
	postRepository  repositories.PostRepository
	userRepository  repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(publisher services.ReviewPublisher, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		reviewPublisher: publisher,
		postRepository:  postRepo,
		userRepository:  userRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPostByID)
	g.GET("/users/:id/posts", h.GetPostsByUser)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost publishes a review as a feed post
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.reviewPublisher.Publish(c.Request().Context(), currentUserID, req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPostByID returns a single post with its author
func (h *PostHandler) GetPostByID(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var author models.UserCompact
	if user, err := h.userRepository.GetUserByID(post.UserID); err == nil {
		author = user.ToCompact()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post":   post,
		"author": author,
	})
}

// GetPostsByUser returns all posts by one user, newest first
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	posts, err := h.postRepository.GetPostsByUserID(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// DeletePost removes a post and everything attached to it
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.reviewPublisher.Delete(c.Request().Context(), c.Param("id"), currentUserID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
