package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllowedPhotoContentTypes is the fixed set of image types a review photo
// may use.
var AllowedPhotoContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MaxPhotosPerReview caps how many photos one review may carry.
const MaxPhotosPerReview = 3

// Photo is an image attached to a review. The blob itself lives with the
// file-storage collaborator; we only keep the reference.
type Photo struct {
	URL         string `json:"url" bson:"url"`
	ContentType string `json:"content_type" bson:"content_type"`
}

// Post wraps exactly one review and is what appears in feeds. Stored in
// MongoDB with the place name/category denormalized for feed filtering.
// LikesCount is derived state recomputed from the Like rows on every
// toggle, never incremented blindly.
type Post struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        uint               `json:"user_id" bson:"user_id"`
	PlaceID       uint               `json:"place_id" bson:"place_id"`
	PlaceName     string             `json:"place_name" bson:"place_name"`
	PlaceCategory Category           `json:"place_category" bson:"place_category"`
	Body          string             `json:"body" bson:"body"`
	Rating        int                `json:"rating" bson:"rating"` // always 1..10 post-validation
	VisitedAt     time.Time          `json:"visited_at" bson:"visited_at"`
	Photos        []Photo            `json:"photos,omitempty" bson:"photos,omitempty"`
	LikesCount    int64              `json:"likes_count" bson:"likes_count"`
	CommentsCount int64              `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"` // immutable, set once
}

// PhotoUpload is a photo reference submitted with a new review.
type PhotoUpload struct {
	URL         string `json:"url" validate:"required,url"`
	ContentType string `json:"content_type" validate:"required"`
}

// CreatePostRequest defines the request body for publishing a review.
// Either PlaceID (existing place) or Place (first reference) must be set.
type CreatePostRequest struct {
	PlaceID          uint             `json:"place_id,omitempty"`
	Place            *NewPlaceRequest `json:"place,omitempty"`
	Body             string           `json:"body" validate:"required,max=2000"`
	Rating           int              `json:"rating" validate:"required,min=1,max=10"`
	CurrentlyAtPlace bool             `json:"currently_at_place"`
	VisitedAt        *time.Time       `json:"visited_at,omitempty"`
	Photos           []PhotoUpload    `json:"photos,omitempty" validate:"omitempty,dive"`
}
