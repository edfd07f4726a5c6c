package repository

import (
	"context"
	"strings"

	"github.com/cppla/community/models"
	"gorm.io/gorm"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post in the database
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

// GetByID retrieves a post by its ID
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// List returns posts matching filter in ascending id order.
// Keyword matches the title case-insensitively; both filters intersect.
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	q := r.db.WithContext(ctx).Model(&models.Post{})
	if filter.Keyword != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Keyword)+"%")
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	posts := []models.Post{}
	if err := q.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update writes the editable columns. view_count is left to IncrementViewCount.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Model(post).
		Select("title", "content", "category_id", "updated_at").
		Updates(post).Error
	return translate(err)
}

// Delete removes the post with its comments, images and likes.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Post{}, id).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{&models.Like{}, &models.Comment{}, &models.PostImage{}} {
			if err := tx.Where("post_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Post{}, id).Error
	}))
}

// IncrementViewCount bumps view_count in a single statement so concurrent reads never lose a view.
func (r *postRepository) IncrementViewCount(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
