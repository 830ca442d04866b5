package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestPost(authorID uint) *models.Post {
	return &models.Post{
		ID:     primitive.NewObjectID(),
		UserID: authorID,
	}
}

func TestReactionStoreToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("author cannot like own post", func(t *testing.T) {
		post := newTestPost(1)
		postRepo := new(MockPostRepository)
		postRepo.On("GetPostByID", ctx, post.ID.Hex()).Return(post, nil)
		likeRepo := new(MockLikeRepository)
		dispatcher := &recorderDispatcher{}
		store := NewReactionStore(likeRepo, new(MockCommentRepository), postRepo, dispatcher)

		_, _, err := store.ToggleLike(ctx, post.ID.Hex(), 1)

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, dispatcher.events)
		likeRepo.AssertNotCalled(t, "ToggleLike")
	})

	t.Run("like then undo is an exact inverse", func(t *testing.T) {
		post := newTestPost(2)
		postID := post.ID.Hex()
		postRepo := new(MockPostRepository)
		postRepo.On("GetPostByID", ctx, postID).Return(post, nil)
		postRepo.On("SetLikesCount", ctx, postID, int64(1)).Return(nil).Once()
		postRepo.On("SetLikesCount", ctx, postID, int64(0)).Return(nil).Once()
		likeRepo := new(MockLikeRepository)
		likeRepo.On("ToggleLike", postID, uint(1)).Return(true, int64(1), nil).Once()
		likeRepo.On("ToggleLike", postID, uint(1)).Return(false, int64(0), nil).Once()
		dispatcher := &recorderDispatcher{}
		store := NewReactionStore(likeRepo, new(MockCommentRepository), postRepo, dispatcher)

		liked, total, err := store.ToggleLike(ctx, postID, 1)
		assert.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, int64(1), total)

		liked, total, err = store.ToggleLike(ctx, postID, 1)
		assert.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, int64(0), total)

		// The like notified the author once; the undo emitted nothing.
		if assert.Len(t, dispatcher.events, 1) {
			event := dispatcher.events[0]
			assert.Equal(t, EventLike, event.Kind)
			assert.Equal(t, uint(1), event.ActorID)
			assert.Equal(t, uint(2), event.PostAuthorID)
			assert.Equal(t, postID, event.PostID)
		}
		postRepo.AssertExpectations(t)
		likeRepo.AssertExpectations(t)
	})

	t.Run("missing post", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetPostByID", ctx, "deadbeefdeadbeefdeadbeef").Return(nil, repositories.ErrPostNotFound)
		store := NewReactionStore(new(MockLikeRepository), new(MockCommentRepository), postRepo, &recorderDispatcher{})

		_, _, err := store.ToggleLike(ctx, "deadbeefdeadbeefdeadbeef", 1)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReactionStoreAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("empty comment rejected", func(t *testing.T) {
		store := NewReactionStore(new(MockLikeRepository), new(MockCommentRepository), new(MockPostRepository), &recorderDispatcher{})

		_, err := store.AddComment(ctx, "x", 1, "   \n\t ")

		assert.True(t, IsValidation(err))
	})

	t.Run("comment over the length limit rejected", func(t *testing.T) {
		store := NewReactionStore(new(MockLikeRepository), new(MockCommentRepository), new(MockPostRepository), &recorderDispatcher{})

		_, err := store.AddComment(ctx, "x", 1, strings.Repeat("a", models.MaxCommentLength+1))

		assert.True(t, IsValidation(err))
	})

	t.Run("comment at the exact limit accepted", func(t *testing.T) {
		post := newTestPost(2)
		postID := post.ID.Hex()
		body := strings.Repeat("ñ", models.MaxCommentLength) // runes, not bytes
		postRepo := new(MockPostRepository)
		postRepo.On("GetPostByID", ctx, postID).Return(post, nil)
		postRepo.On("IncrementCommentsCount", ctx, postID).Return(nil)
		commentRepo := new(MockCommentRepository)
		commentRepo.On("CreateComment", mock.AnythingOfType("*models.Comment")).Return(nil)
		dispatcher := &recorderDispatcher{}
		store := NewReactionStore(new(MockLikeRepository), commentRepo, postRepo, dispatcher)

		comment, err := store.AddComment(ctx, postID, 1, body)

		assert.NoError(t, err)
		assert.Equal(t, body, comment.Body)
		assert.Equal(t, uint(1), comment.UserID)
		if assert.Len(t, dispatcher.events, 1) {
			assert.Equal(t, EventComment, dispatcher.events[0].Kind)
		}
		commentRepo.AssertExpectations(t)
		postRepo.AssertExpectations(t)
	})

	t.Run("commenting on own post emits no event", func(t *testing.T) {
		post := newTestPost(1)
		postID := post.ID.Hex()
		postRepo := new(MockPostRepository)
		postRepo.On("GetPostByID", ctx, postID).Return(post, nil)
		postRepo.On("IncrementCommentsCount", ctx, postID).Return(nil)
		commentRepo := new(MockCommentRepository)
		commentRepo.On("CreateComment", mock.AnythingOfType("*models.Comment")).Return(nil)
		dispatcher := &recorderDispatcher{}
		store := NewReactionStore(new(MockLikeRepository), commentRepo, postRepo, dispatcher)

		_, err := store.AddComment(ctx, postID, 1, "muy bonito lugar")

		assert.NoError(t, err)
		assert.Empty(t, dispatcher.events)
	})
}

func TestReactionStoreDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("only the comment author may delete", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetCommentByID", uint(7)).Return(&models.Comment{ID: 7, PostID: "x", UserID: 1}, nil)
		store := NewReactionStore(new(MockLikeRepository), commentRepo, new(MockPostRepository), &recorderDispatcher{})

		err := store.DeleteComment(ctx, 7, 2)

		assert.ErrorIs(t, err, ErrForbidden)
		commentRepo.AssertNotCalled(t, "DeleteComment", mock.Anything)
	})

	t.Run("delete decrements the counter", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetCommentByID", uint(7)).Return(&models.Comment{ID: 7, PostID: "x", UserID: 1}, nil)
		commentRepo.On("DeleteComment", uint(7)).Return(nil)
		postRepo := new(MockPostRepository)
		postRepo.On("DecrementCommentsCount", ctx, "x").Return(nil)
		store := NewReactionStore(new(MockLikeRepository), commentRepo, postRepo, &recorderDispatcher{})

		err := store.DeleteComment(ctx, 7, 1)

		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
		postRepo.AssertExpectations(t)
	})
}
