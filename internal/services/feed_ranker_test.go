package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zacatour/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func feedPost(hexID string, authorID uint, createdAt time.Time) models.Post {
	id, _ := primitive.ObjectIDFromHex(hexID)
	return models.Post{ID: id, UserID: authorID, CreatedAt: createdAt}
}

func TestFeedRankerRank(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("followed authors come first, newest first within each group", func(t *testing.T) {
		// Viewer 1 follows author 2 but not author 3. The newest post
		// overall belongs to the unfollowed author and must still rank
		// below every followed post.
		p1 := feedPost("aaaaaaaaaaaaaaaaaaaaaaa1", 2, base.Add(10*time.Minute))
		p2 := feedPost("aaaaaaaaaaaaaaaaaaaaaaa2", 3, base.Add(20*time.Minute))
		p3 := feedPost("aaaaaaaaaaaaaaaaaaaaaaa3", 2, base.Add(5*time.Minute))

		postRepo := new(MockPostRepository)
		postRepo.On("GetAllPosts", ctx, models.Category("")).Return([]models.Post{p2, p3, p1}, nil)
		followRepo := new(MockFollowRepository)
		followRepo.On("GetFollowingIDs", uint(1)).Return([]uint{2}, nil)

		ranker := NewFeedRanker(postRepo, followRepo)
		ranked, err := ranker.Rank(ctx, 1, "")

		assert.NoError(t, err)
		if assert.Len(t, ranked, 3) {
			assert.Equal(t, p1.ID, ranked[0].ID)
			assert.Equal(t, p3.ID, ranked[1].ID)
			assert.Equal(t, p2.ID, ranked[2].ID)
		}
	})

	t.Run("identical timestamps order by post id", func(t *testing.T) {
		pa := feedPost("aaaaaaaaaaaaaaaaaaaaaaaa", 3, base)
		pb := feedPost("bbbbbbbbbbbbbbbbbbbbbbbb", 3, base)

		postRepo := new(MockPostRepository)
		postRepo.On("GetAllPosts", ctx, models.Category("")).Return([]models.Post{pb, pa}, nil)
		followRepo := new(MockFollowRepository)
		followRepo.On("GetFollowingIDs", uint(1)).Return([]uint{}, nil)

		ranker := NewFeedRanker(postRepo, followRepo)
		ranked, err := ranker.Rank(ctx, 1, "")

		assert.NoError(t, err)
		if assert.Len(t, ranked, 2) {
			assert.Equal(t, pa.ID, ranked[0].ID)
			assert.Equal(t, pb.ID, ranked[1].ID)
		}
	})

	t.Run("category filter is passed to the store", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetAllPosts", ctx, models.CategoryMuseo).Return([]models.Post{}, nil)
		followRepo := new(MockFollowRepository)
		followRepo.On("GetFollowingIDs", uint(1)).Return([]uint{}, nil)

		ranker := NewFeedRanker(postRepo, followRepo)
		_, err := ranker.Rank(ctx, 1, models.CategoryMuseo)

		assert.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		ranker := NewFeedRanker(new(MockPostRepository), new(MockFollowRepository))

		_, err := ranker.Rank(ctx, 1, "discoteca")

		assert.True(t, IsValidation(err))
	})

	t.Run("viewer following nobody sees everything newest first", func(t *testing.T) {
		p1 := feedPost("aaaaaaaaaaaaaaaaaaaaaaa1", 2, base.Add(time.Minute))
		p2 := feedPost("aaaaaaaaaaaaaaaaaaaaaaa2", 3, base.Add(2*time.Minute))

		postRepo := new(MockPostRepository)
		postRepo.On("GetAllPosts", ctx, models.Category("")).Return([]models.Post{p1, p2}, nil)
		followRepo := new(MockFollowRepository)
		followRepo.On("GetFollowingIDs", uint(9)).Return([]uint{}, nil)

		ranker := NewFeedRanker(postRepo, followRepo)
		ranked, err := ranker.Rank(ctx, 9, "")

		assert.NoError(t, err)
		if assert.Len(t, ranked, 2) {
			assert.Equal(t, p2.ID, ranked[0].ID)
			assert.Equal(t, p1.ID, ranked[1].ID)
		}
	})
}
