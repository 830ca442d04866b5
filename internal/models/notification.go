package models

import "time"

// Notification kinds.
const (
	NotificationLike        = "like"
	NotificationComment     = "comment"
	NotificationNewPost     = "new_post"
	NotificationNewFollower = "new_follower"
)

// Notification targets one recipient and originates from one actor.
// Created by the fan-out, mutated only by the one-way unread→read flip,
// deleted only when the referenced post is deleted.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Kind        string    `json:"kind" gorm:"size:30;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	PostID      *string   `json:"post_id,omitempty"` // MongoDB ObjectID as string, nil for new_follower
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// Route target kinds returned by marking a notification read.
const (
	RoutePost    = "post"
	RouteProfile = "profile"
	RouteFeed    = "feed"
)

// RouteTarget tells the client where to navigate after a notification is
// read: the referenced post, the actor's profile, or the feed.
type RouteTarget struct {
	Kind   string `json:"kind"`
	PostID string `json:"post_id,omitempty"`
	UserID uint   `json:"user_id,omitempty"`
}
