package models

import "time"

// MaxCommentLength is the server-enforced cap on comment bodies.
const MaxCommentLength = 150

// Comment is a remark on a post. Immutable once created; only the author
// may delete it.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"index"`
	Body      string    `json:"body" gorm:"size:150"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}
