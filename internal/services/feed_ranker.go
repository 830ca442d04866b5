package services

import (
	"context"
	"sort"

	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
)

// FeedRanker produces the ordered feed for a viewer. It performs no
// writes. The in-memory sort is deliberately hidden behind this
// interface so it can later be replaced by a store-side ordered query
// without touching callers.
type FeedRanker interface {
	// Rank orders the candidate posts for the viewer, optionally
	// filtered to one place category (exact match). Posts by followed
	// authors come first, newest first within each group.
	Rank(ctx context.Context, viewerID uint, category models.Category) ([]models.Post, error)
}

type feedRanker struct {
	postRepo   repositories.PostRepository
	followRepo repositories.FollowRepository
}

// NewFeedRanker creates the feed ranker service.
func NewFeedRanker(postRepo repositories.PostRepository, followRepo repositories.FollowRepository) FeedRanker {
	return &feedRanker{postRepo: postRepo, followRepo: followRepo}
}

func (s *feedRanker) Rank(ctx context.Context, viewerID uint, category models.Category) ([]models.Post, error) {
	if category != "" && !category.IsValid() {
		return nil, newValidationError("categoría desconocida: %s", category)
	}

	posts, err := s.postRepo.GetAllPosts(ctx, category)
	if err != nil {
		return nil, err
	}

	followingIDs, err := s.followRepo.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	followed := make(map[uint]bool, len(followingIDs))
	for _, id := range followingIDs {
		followed[id] = true
	}

	// Group 0: authors the viewer follows. Group 1: everyone else.
	// Within a group newest first; identical timestamps order by post
	// ID so the result is deterministic for a fixed candidate set.
	group := func(p models.Post) int {
		if followed[p.UserID] {
			return 0
		}
		return 1
	}
	sort.SliceStable(posts, func(i, j int) bool {
		gi, gj := group(posts[i]), group(posts[j])
		if gi != gj {
			return gi < gj
		}
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID.Hex() < posts[j].ID.Hex()
	})
	return posts, nil
}
