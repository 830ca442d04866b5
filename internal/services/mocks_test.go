package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zacatour/backend/internal/models"
)

// Hand-written testify mocks for the repository interfaces the services
// depend on.

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	args := m.Called(firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) SearchUsers(query string) ([]models.User, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockPlaceRepository struct{ mock.Mock }

func (m *MockPlaceRepository) GetPlaceByID(id uint) (*models.Place, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlaceByGoogleID(googlePlaceID string) (*models.Place, error) {
	args := m.Called(googlePlaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Place), args.Error(1)
}

func (m *MockPlaceRepository) FindOrCreate(place *models.Place) error {
	return m.Called(place).Error(0)
}

func (m *MockPlaceRepository) GetPlaces() ([]models.Place, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlacesByCategory(category models.Category) ([]models.Place, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Place), args.Error(1)
}

type MockPostRepository struct{ mock.Mock }

func (m *MockPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostsByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAllPosts(ctx context.Context, category models.Category) ([]models.Post, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) SetLikesCount(ctx context.Context, postID string, count int64) error {
	return m.Called(ctx, postID, count).Error(0)
}

func (m *MockPostRepository) IncrementCommentsCount(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

func (m *MockPostRepository) DecrementCommentsCount(ctx context.Context, postID string) error {
	return m.Called(ctx, postID).Error(0)
}

type MockLikeRepository struct{ mock.Mock }

func (m *MockLikeRepository) ToggleLike(postID string, userID uint) (bool, int64, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockLikeRepository) GetLikesCountByPostID(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) HasUserLikedPost(postID string, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteByPostID(postID string) error {
	return m.Called(postID).Error(0)
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) CreateComment(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteComment(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockCommentRepository) DeleteByPostID(postID string) error {
	return m.Called(postID).Error(0)
}

type MockFollowRepository struct{ mock.Mock }

func (m *MockFollowRepository) ToggleFollow(followerID, followingID uint) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowRepository) GetFollowerIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) CreateNotification(notification *models.Notification) error {
	return m.Called(notification).Error(0)
}

func (m *MockNotificationRepository) GetNotificationByID(id uint) (*models.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetUnreadByRecipient(recipientID uint, limit int) ([]models.Notification, error) {
	args := m.Called(recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	args := m.Called(recipientID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(notificationID uint) error {
	return m.Called(notificationID).Error(0)
}

func (m *MockNotificationRepository) DeleteByPostID(postID string) error {
	return m.Called(postID).Error(0)
}

// recorderDispatcher captures the events a service emits so tests can
// assert on them directly.
type recorderDispatcher struct {
	events []Event
}

func (d *recorderDispatcher) Dispatch(_ context.Context, event Event) {
	d.events = append(d.events, event)
}
