package repository

import (
	"context"

	"github.com/cppla/community/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A duplicate social id yields ErrConflict.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// GetByID retrieves a user by its ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetBySocialID retrieves a user by the provider's account id
func (r *userRepository) GetBySocialID(ctx context.Context, socialID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("social_id = ?", socialID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update writes the mutable profile columns. social_id is never written.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Model(user).
		Select("nickname", "profile_image", "is_admin", "is_active", "total_points", "updated_at").
		Updates(user).Error
	return translate(err)
}

// Delete removes the user together with everything the user authored.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := deletePostsWhere(tx, "user_id", id); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	}))
}
