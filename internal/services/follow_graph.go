package services

import (
	"context"

	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
)

// FollowGraph owns the directed follower/followee edges. It is the only
// mutation surface for Follow rows.
type FollowGraph interface {
	// Toggle inserts the edge if absent or removes it if present and
	// reports the resulting state. A self-follow is a silent no-op.
	Toggle(ctx context.Context, actorID, targetID uint) (following bool, err error)
	IsFollowing(ctx context.Context, a, b uint) (bool, error)
	Followers(ctx context.Context, of uint) ([]models.User, error)
	Following(ctx context.Context, of uint) ([]models.User, error)
}

type followGraph struct {
	followRepo repositories.FollowRepository
	dispatcher Dispatcher
}

// NewFollowGraph creates the follow graph service.
func NewFollowGraph(followRepo repositories.FollowRepository, dispatcher Dispatcher) FollowGraph {
	return &followGraph{followRepo: followRepo, dispatcher: dispatcher}
}

func (s *followGraph) Toggle(ctx context.Context, actorID, targetID uint) (bool, error) {
	if actorID == targetID {
		return false, nil
	}

	following, err := s.followRepo.ToggleFollow(actorID, targetID)
	if err != nil {
		return false, err
	}

	// Only a new edge notifies the followee; removal emits nothing.
	if following {
		s.dispatcher.Dispatch(ctx, Event{
			Kind:         EventNewFollower,
			ActorID:      actorID,
			TargetUserID: targetID,
		})
	}
	return following, nil
}

func (s *followGraph) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.IsFollowing(a, b)
}

func (s *followGraph) Followers(ctx context.Context, of uint) ([]models.User, error) {
	return s.followRepo.GetFollowers(of)
}

func (s *followGraph) Following(ctx context.Context, of uint) ([]models.User, error) {
	return s.followRepo.GetFollowing(of)
}
