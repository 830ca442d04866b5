package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zacatour/backend/internal/models"
	"gorm.io/gorm"
)

func TestNotificationFanoutDispatch(t *testing.T) {
	ctx := context.Background()
	actor := &models.User{ID: 1, Username: "ana"}

	t.Run("new post fans out to the follower snapshot", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", uint(1)).Return(actor, nil)
		followRepo := new(MockFollowRepository)
		followRepo.On("GetFollowerIDs", uint(1)).Return([]uint{2, 3}, nil)

		var created []*models.Notification
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("CreateNotification", mock.AnythingOfType("*models.Notification")).
			Run(func(args mock.Arguments) {
				created = append(created, args.Get(0).(*models.Notification))
			}).Return(nil)

		fanout := NewNotificationFanout(notifRepo, userRepo, followRepo)
		fanout.Dispatch(ctx, Event{Kind: EventNewPost, ActorID: 1, PostID: "abc"})

		if assert.Len(t, created, 2) {
			recipients := []uint{created[0].RecipientID, created[1].RecipientID}
			assert.ElementsMatch(t, []uint{2, 3}, recipients)
			for _, n := range created {
				assert.Equal(t, models.NotificationNewPost, n.Kind)
				assert.Equal(t, uint(1), n.ActorID)
				assert.False(t, n.IsRead)
				assert.Equal(t, "ana ha publicado algo nuevo.", n.Message)
				if assert.NotNil(t, n.PostID) {
					assert.Equal(t, "abc", *n.PostID)
				}
			}
		}
	})

	t.Run("like on own post is suppressed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", uint(1)).Return(actor, nil)
		notifRepo := new(MockNotificationRepository)

		fanout := NewNotificationFanout(notifRepo, userRepo, new(MockFollowRepository))
		fanout.Dispatch(ctx, Event{Kind: EventLike, ActorID: 1, PostID: "abc", PostAuthorID: 1})

		notifRepo.AssertNotCalled(t, "CreateNotification", mock.Anything)
	})

	t.Run("like notifies the post author", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", uint(1)).Return(actor, nil)
		var created *models.Notification
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("CreateNotification", mock.AnythingOfType("*models.Notification")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.Notification)
			}).Return(nil)

		fanout := NewNotificationFanout(notifRepo, userRepo, new(MockFollowRepository))
		fanout.Dispatch(ctx, Event{Kind: EventLike, ActorID: 1, PostID: "abc", PostAuthorID: 2})

		if assert.NotNil(t, created) {
			assert.Equal(t, models.NotificationLike, created.Kind)
			assert.Equal(t, uint(2), created.RecipientID)
			assert.Equal(t, "ana le dio like a tu publicación.", created.Message)
		}
	})

	t.Run("new follower notifies the followee without a post reference", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", uint(1)).Return(actor, nil)
		var created *models.Notification
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("CreateNotification", mock.AnythingOfType("*models.Notification")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.Notification)
			}).Return(nil)

		fanout := NewNotificationFanout(notifRepo, userRepo, new(MockFollowRepository))
		fanout.Dispatch(ctx, Event{Kind: EventNewFollower, ActorID: 1, TargetUserID: 5})

		if assert.NotNil(t, created) {
			assert.Equal(t, models.NotificationNewFollower, created.Kind)
			assert.Equal(t, uint(5), created.RecipientID)
			assert.Nil(t, created.PostID)
			assert.Equal(t, "ana comenzó a seguirte.", created.Message)
		}
	})

	t.Run("delivery failure is swallowed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetUserByID", uint(1)).Return(actor, nil)
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("CreateNotification", mock.Anything).Return(errors.New("db down"))

		fanout := NewNotificationFanout(notifRepo, userRepo, new(MockFollowRepository))
		assert.NotPanics(t, func() {
			fanout.Dispatch(ctx, Event{Kind: EventComment, ActorID: 1, PostID: "abc", PostAuthorID: 2})
		})
	})
}

func TestNotificationFanoutMarkRead(t *testing.T) {
	ctx := context.Background()
	postID := "abc123"

	t.Run("unknown notification", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("GetNotificationByID", uint(9)).Return(nil, gorm.ErrRecordNotFound)
		fanout := NewNotificationFanout(notifRepo, new(MockUserRepository), new(MockFollowRepository))

		_, err := fanout.MarkRead(ctx, 9, 1)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("only the recipient may mark read", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("GetNotificationByID", uint(9)).Return(&models.Notification{ID: 9, RecipientID: 2}, nil)
		fanout := NewNotificationFanout(notifRepo, new(MockUserRepository), new(MockFollowRepository))

		_, err := fanout.MarkRead(ctx, 9, 3)

		assert.ErrorIs(t, err, ErrForbidden)
		notifRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything)
	})

	t.Run("routes to the referenced post", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("GetNotificationByID", uint(9)).Return(&models.Notification{
			ID: 9, Kind: models.NotificationLike, RecipientID: 2, PostID: &postID,
		}, nil)
		notifRepo.On("MarkAsRead", uint(9)).Return(nil)
		fanout := NewNotificationFanout(notifRepo, new(MockUserRepository), new(MockFollowRepository))

		target, err := fanout.MarkRead(ctx, 9, 2)

		assert.NoError(t, err)
		assert.Equal(t, models.RouteTarget{Kind: models.RoutePost, PostID: postID}, target)
		notifRepo.AssertExpectations(t)
	})

	t.Run("new follower routes to the actor profile", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("GetNotificationByID", uint(9)).Return(&models.Notification{
			ID: 9, Kind: models.NotificationNewFollower, ActorID: 4, RecipientID: 2,
		}, nil)
		notifRepo.On("MarkAsRead", uint(9)).Return(nil)
		fanout := NewNotificationFanout(notifRepo, new(MockUserRepository), new(MockFollowRepository))

		target, err := fanout.MarkRead(ctx, 9, 2)

		assert.NoError(t, err)
		assert.Equal(t, models.RouteTarget{Kind: models.RouteProfile, UserID: 4}, target)
	})

	t.Run("already read is idempotent", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("GetNotificationByID", uint(9)).Return(&models.Notification{
			ID: 9, Kind: models.NotificationLike, RecipientID: 2, PostID: &postID, IsRead: true,
		}, nil)
		fanout := NewNotificationFanout(notifRepo, new(MockUserRepository), new(MockFollowRepository))

		target, err := fanout.MarkRead(ctx, 9, 2)

		assert.NoError(t, err)
		assert.Equal(t, models.RoutePost, target.Kind)
		notifRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything)
	})
}

func TestNotificationFanoutUnreadFor(t *testing.T) {
	ctx := context.Background()

	t.Run("missing limit falls back to the default", func(t *testing.T) {
		notifRepo := new(MockNotificationRepository)
		notifRepo.On("GetUnreadByRecipient", uint(2), DefaultUnreadLimit).Return([]models.Notification{}, nil)
		fanout := NewNotificationFanout(notifRepo, new(MockUserRepository), new(MockFollowRepository))

		_, err := fanout.UnreadFor(ctx, 2, 0)

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})
}
