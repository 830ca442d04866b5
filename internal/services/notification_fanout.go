package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationFanout translates domain events into per-recipient
// notification rows and serves the retrieval/mutation surface for them.
type NotificationFanout interface {
	Dispatcher
	UnreadFor(ctx context.Context, userID uint, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, notificationID, requesterID uint) (models.RouteTarget, error)
}

// DefaultUnreadLimit caps UnreadFor when the caller passes no limit.
const DefaultUnreadLimit = 10

type notificationFanout struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	followRepo       repositories.FollowRepository
}

// NewNotificationFanout creates the fan-out service.
func NewNotificationFanout(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
) NotificationFanout {
	return &notificationFanout{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		followRepo:       followRepo,
	}
}

// Dispatch fans one event out to its recipients. Delivery is best
// effort: failures are logged and swallowed so the triggering action is
// never rolled back. A failed follower batch can be re-driven later by a
// queue without changing this contract.
func (s *notificationFanout) Dispatch(ctx context.Context, event Event) {
	actor, err := s.userRepo.GetUserByID(event.ActorID)
	if err != nil {
		log.Printf("notification fan-out: actor %d lookup failed, dropping %s event: %v", event.ActorID, event.Kind, err)
		return
	}

	switch event.Kind {
	case EventLike:
		if event.ActorID == event.PostAuthorID {
			return // no self-notification
		}
		s.create(&models.Notification{
			Kind:        models.NotificationLike,
			ActorID:     event.ActorID,
			RecipientID: event.PostAuthorID,
			PostID:      &event.PostID,
			Message:     fmt.Sprintf("%s le dio like a tu publicación.", actor.Username),
		})

	case EventComment:
		if event.ActorID == event.PostAuthorID {
			return
		}
		s.create(&models.Notification{
			Kind:        models.NotificationComment,
			ActorID:     event.ActorID,
			RecipientID: event.PostAuthorID,
			PostID:      &event.PostID,
			Message:     fmt.Sprintf("%s comentó en tu publicación.", actor.Username),
		})

	case EventNewPost:
		// Snapshot of the current followers; late followers get nothing
		// retroactively.
		followerIDs, err := s.followRepo.GetFollowerIDs(event.ActorID)
		if err != nil {
			log.Printf("notification fan-out: follower snapshot for user %d failed: %v", event.ActorID, err)
			return
		}
		message := fmt.Sprintf("%s ha publicado algo nuevo.", actor.Username)
		for _, followerID := range followerIDs {
			s.create(&models.Notification{
				Kind:        models.NotificationNewPost,
				ActorID:     event.ActorID,
				RecipientID: followerID,
				PostID:      &event.PostID,
				Message:     message,
			})
		}

	case EventNewFollower:
		s.create(&models.Notification{
			Kind:        models.NotificationNewFollower,
			ActorID:     event.ActorID,
			RecipientID: event.TargetUserID,
			Message:     fmt.Sprintf("%s comenzó a seguirte.", actor.Username),
		})

	default:
		log.Printf("notification fan-out: unknown event kind %q", event.Kind)
	}
}

func (s *notificationFanout) create(notification *models.Notification) {
	if err := s.notificationRepo.CreateNotification(notification); err != nil {
		log.Printf("notification fan-out: delivery to user %d failed: %v", notification.RecipientID, err)
	}
}

// UnreadFor returns the recipient's unread notifications, newest first.
func (s *notificationFanout) UnreadFor(ctx context.Context, userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultUnreadLimit
	}
	return s.notificationRepo.GetUnreadByRecipient(userID, limit)
}

func (s *notificationFanout) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.GetUnreadCount(userID)
}

// MarkRead flips the unread flag exactly once and returns where the
// client should navigate: the referenced post, the actor's profile for
// new followers, or the feed. Re-marking an already-read notification is
// a no-op, not an error.
func (s *notificationFanout) MarkRead(ctx context.Context, notificationID, requesterID uint) (models.RouteTarget, error) {
	notification, err := s.notificationRepo.GetNotificationByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RouteTarget{}, ErrNotFound
		}
		return models.RouteTarget{}, err
	}

	if notification.RecipientID != requesterID {
		return models.RouteTarget{}, ErrForbidden
	}

	if !notification.IsRead {
		if err := s.notificationRepo.MarkAsRead(notification.ID); err != nil {
			return models.RouteTarget{}, err
		}
	}

	switch {
	case notification.PostID != nil:
		return models.RouteTarget{Kind: models.RoutePost, PostID: *notification.PostID}, nil
	case notification.Kind == models.NotificationNewFollower:
		return models.RouteTarget{Kind: models.RouteProfile, UserID: notification.ActorID}, nil
	default:
		return models.RouteTarget{Kind: models.RouteFeed}, nil
	}
}
