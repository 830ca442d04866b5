package repositories

import (
	"github.com/zacatour/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(postID string, userID uint) (liked bool, total int64, err error)
	GetLikesCountByPostID(postID string) (int64, error)
	HasUserLikedPost(postID string, userID uint) (bool, error)
	DeleteByPostID(postID string) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike inserts the like if absent or removes it if present, inside
// one transaction. The insert relies on the unique (post_id, user_id)
// index with ON CONFLICT DO NOTHING, so two concurrent toggles on the
// same pair cannot produce two rows. The returned total is recomputed
// from the remaining rows in the same transaction.
func (r *PostgresLikeRepository) ToggleLike(postID string, userID uint) (bool, int64, error) {
	var liked bool
	var total int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		like := models.Like{PostID: postID, UserID: userID}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&like)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Pair already existed: this toggle is an undo.
			if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
				Delete(&models.Like{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			liked = true
		}

		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&total).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, total, nil
}

func (r *PostgresLikeRepository) GetLikesCountByPostID(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresLikeRepository) HasUserLikedPost(postID string, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByPostID removes every like of a post, used when the post itself
// is deleted.
func (r *PostgresLikeRepository) DeleteByPostID(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
