package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
	"gorm.io/gorm"
)

// ReactionStore owns the like and comment rows attached to posts. It is
// the only mutation surface for them.
type ReactionStore interface {
	// ToggleLike likes the post, or undoes an existing like. Returns
	// the resulting state and the recomputed total. Self-like is
	// forbidden.
	ToggleLike(ctx context.Context, postID string, userID uint) (liked bool, total int64, err error)
	AddComment(ctx context.Context, postID string, userID uint, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, actorID uint) error
	CommentsFor(ctx context.Context, postID string) ([]models.Comment, error)
	HasLiked(ctx context.Context, postID string, userID uint) (bool, error)
}

type reactionStore struct {
	likeRepo    repositories.LikeRepository
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	dispatcher  Dispatcher
}

// NewReactionStore creates the reaction store service.
func NewReactionStore(
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	dispatcher Dispatcher,
) ReactionStore {
	return &reactionStore{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		dispatcher:  dispatcher,
	}
}

func (s *reactionStore) ToggleLike(ctx context.Context, postID string, userID uint) (bool, int64, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return false, 0, ErrNotFound
		}
		return false, 0, err
	}

	if post.UserID == userID {
		return false, 0, ErrForbidden
	}

	liked, total, err := s.likeRepo.ToggleLike(postID, userID)
	if err != nil {
		return false, 0, err
	}

	// Persist the counter recomputed from the authoritative Like rows.
	if err := s.postRepo.SetLikesCount(ctx, postID, total); err != nil {
		return false, 0, err
	}

	// A new like notifies the author; an undo emits nothing.
	if liked {
		s.dispatcher.Dispatch(ctx, Event{
			Kind:         EventLike,
			ActorID:      userID,
			PostID:       postID,
			PostAuthorID: post.UserID,
		})
	}
	return liked, total, nil
}

func (s *reactionStore) AddComment(ctx context.Context, postID string, userID uint, text string) (*models.Comment, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, newValidationError("el comentario no puede estar vacío")
	}
	if utf8.RuneCountInString(body) > models.MaxCommentLength {
		return nil, newValidationError("el comentario no puede exceder %d caracteres", models.MaxCommentLength)
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	if err := s.postRepo.IncrementCommentsCount(ctx, postID); err != nil {
		return nil, err
	}

	if userID != post.UserID {
		s.dispatcher.Dispatch(ctx, Event{
			Kind:         EventComment,
			ActorID:      userID,
			PostID:       postID,
			PostAuthorID: post.UserID,
		})
	}
	return comment, nil
}

func (s *reactionStore) DeleteComment(ctx context.Context, commentID, actorID uint) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if comment.UserID != actorID {
		return ErrForbidden
	}

	if err := s.commentRepo.DeleteComment(commentID); err != nil {
		return err
	}
	return s.postRepo.DecrementCommentsCount(ctx, comment.PostID)
}

func (s *reactionStore) CommentsFor(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.GetCommentsByPostID(postID)
}

func (s *reactionStore) HasLiked(ctx context.Context, postID string, userID uint) (bool, error) {
	return s.likeRepo.HasUserLikedPost(postID, userID)
}
