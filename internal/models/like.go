package models

import "time"

// Like marks that a user liked a post. The composite unique index is the
// correctness boundary for concurrent toggles on the same pair: two racing
// inserts cannot produce two rows.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_like_post_user"` // MongoDB ObjectID as string
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_post_user"`
	CreatedAt time.Time `json:"created_at"`
}
