package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/places"
	"github.com/zacatour/backend/internal/repositories"
	"gorm.io/gorm"
)

// VisitWindowDays bounds how far back a declared visit may lie. The lower
// bound is inclusive: a visit exactly 30 days old is accepted.
const VisitWindowDays = 30

// ReviewPublisher creates and deletes review posts. Publishing validates
// the review, resolves the place, stores the post document and fans out
// the new-post event.
type ReviewPublisher interface {
	Publish(ctx context.Context, userID uint, req models.CreatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string, actorID uint) error
}

type reviewPublisher struct {
	postRepo    repositories.PostRepository
	placeRepo   repositories.PlaceRepository
	likeRepo    repositories.LikeRepository
	commentRepo repositories.CommentRepository
	notifRepo   repositories.NotificationRepository
	dispatcher  Dispatcher
	now         func() time.Time
}

// NewReviewPublisher creates the review publisher service.
func NewReviewPublisher(
	postRepo repositories.PostRepository,
	placeRepo repositories.PlaceRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	notifRepo repositories.NotificationRepository,
	dispatcher Dispatcher,
) ReviewPublisher {
	return &reviewPublisher{
		postRepo:    postRepo,
		placeRepo:   placeRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		notifRepo:   notifRepo,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

func (s *reviewPublisher) Publish(ctx context.Context, userID uint, req models.CreatePostRequest) (*models.Post, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, newValidationError("la reseña no puede estar vacía")
	}
	if req.Rating < 1 || req.Rating > 10 {
		return nil, newValidationError("la calificación debe estar entre 1 y 10")
	}

	photos, err := validatePhotos(req.Photos)
	if err != nil {
		return nil, err
	}

	visitedAt, err := s.resolveVisitDate(req)
	if err != nil {
		return nil, err
	}

	place, err := s.resolvePlace(req)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:        userID,
		PlaceID:       place.ID,
		PlaceName:     place.Name,
		PlaceCategory: place.Category,
		Body:          body,
		Rating:        req.Rating,
		VisitedAt:     visitedAt,
		Photos:        photos,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	// Best-effort fan-out to the current follower snapshot; a delivery
	// failure never rolls the post back.
	s.dispatcher.Dispatch(ctx, Event{
		Kind:    EventNewPost,
		ActorID: userID,
		PostID:  post.ID.Hex(),
	})
	return post, nil
}

func validatePhotos(uploads []models.PhotoUpload) ([]models.Photo, error) {
	if len(uploads) > models.MaxPhotosPerReview {
		return nil, newValidationError("solo puedes subir un máximo de %d fotografías", models.MaxPhotosPerReview)
	}
	photos := make([]models.Photo, 0, len(uploads))
	for _, upload := range uploads {
		if !models.AllowedPhotoContentTypes[upload.ContentType] {
			return nil, newValidationError("tipo de imagen no soportado: %s", upload.ContentType)
		}
		photos = append(photos, models.Photo{URL: upload.URL, ContentType: upload.ContentType})
	}
	return photos, nil
}

// resolveVisitDate returns now when the user declares being at the place,
// otherwise the supplied timestamp constrained to [now-30d, now].
func (s *reviewPublisher) resolveVisitDate(req models.CreatePostRequest) (time.Time, error) {
	now := s.now()
	if req.CurrentlyAtPlace {
		return now, nil
	}
	if req.VisitedAt == nil {
		return time.Time{}, newValidationError("debes proporcionar la fecha y hora de tu visita")
	}

	visitedAt := *req.VisitedAt
	if visitedAt.After(now) {
		return time.Time{}, newValidationError("la fecha de visita no puede estar en el futuro")
	}
	if visitedAt.Before(now.AddDate(0, 0, -VisitWindowDays)) {
		return time.Time{}, newValidationError("la fecha de visita no puede tener más de %d días", VisitWindowDays)
	}
	return visitedAt, nil
}

// resolvePlace loads the referenced place or creates it on first
// reference. The category of a new place is inferred from the provider
// type tags and defaults to "otro".
func (s *reviewPublisher) resolvePlace(req models.CreatePostRequest) (*models.Place, error) {
	if req.PlaceID != 0 {
		place, err := s.placeRepo.GetPlaceByID(req.PlaceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return place, nil
	}

	if req.Place == nil || strings.TrimSpace(req.Place.Name) == "" {
		return nil, newValidationError("debes indicar el lugar turístico")
	}

	place := &models.Place{
		Name:      strings.TrimSpace(req.Place.Name),
		Address:   req.Place.Address,
		Category:  places.CategoryFor(req.Place.TypeTags),
		Latitude:  req.Place.Latitude,
		Longitude: req.Place.Longitude,
	}
	if req.Place.GooglePlaceID != "" {
		id := req.Place.GooglePlaceID
		place.GooglePlaceID = &id
	}
	if err := s.placeRepo.FindOrCreate(place); err != nil {
		return nil, err
	}
	return place, nil
}

// Delete removes the post and cascades its likes, comments and
// notifications. Only the author may delete.
func (s *reviewPublisher) Delete(ctx context.Context, postID string, actorID uint) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrNotFound
		}
		return err
	}

	if post.UserID != actorID {
		return ErrForbidden
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByPostID(postID); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByPostID(postID); err != nil {
		return err
	}
	return s.notifRepo.DeleteByPostID(postID)
}
