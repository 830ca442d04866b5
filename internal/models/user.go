package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is a traveler account. Identity ultimately lives with the auth
// provider (Firebase or local credentials); the rest of the system only
// cares about the unique handle.
type User struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Username        string     `json:"username" gorm:"uniqueIndex;size:50"`
	Email           string     `json:"email" gorm:"uniqueIndex"`
	Password        string     `json:"-"` // bcrypt hash, never serialized
	Bio             string     `json:"bio,omitempty"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	ProfilePhotoURL string     `json:"profile_photo_url,omitempty"`
	FirebaseUID     *string    `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to Firebase User UID
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UserCompact is the author payload embedded in feed and notification responses
type UserCompact struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:              u.ID,
		Username:        u.Username,
		ProfilePhotoURL: u.ProfilePhotoURL,
	}
}

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=2,max=50"`
	Email       string `json:"email" validate:"required,email"`
	FirebaseUID string `json:"firebase_uid" validate:"required"` // Firebase UID provided by the client after Firebase Auth
}

type CreateLocalUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	Username        string `json:"username,omitempty" validate:"omitempty,min=2,max=50"`
	Bio             string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
