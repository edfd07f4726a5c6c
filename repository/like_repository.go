package repository

import (
	"context"
	"errors"

	"github.com/cppla/community/models"
	"gorm.io/gorm"
)

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository instance
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the caller's like on a post. The first toggle inserts a liked row.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			like = models.Like{UserID: userID, PostID: postID, IsLiked: true}
			return tx.Create(&like).Error
		}
		if err != nil {
			return err
		}
		like.IsLiked = !like.IsLiked
		return tx.Model(&models.Like{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Update("is_liked", like.IsLiked).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &like, nil
}

func (r *likeRepository) Get(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
	if err != nil {
		return nil, translate(err)
	}
	return &like, nil
}

// CountByPost counts active likes on a post.
func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ? AND is_liked = ?", postID, true).
		Count(&n).Error
	return n, err
}
