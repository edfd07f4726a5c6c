package repository

import (
	"context"

	"github.com/cppla/community/models"
	"gorm.io/gorm"
)

type postImageRepository struct {
	db *gorm.DB
}

// NewPostImageRepository creates a new post image repository instance
func NewPostImageRepository(db *gorm.DB) PostImageRepository {
	return &postImageRepository{db: db}
}

func (r *postImageRepository) Create(ctx context.Context, image *models.PostImage) error {
	return translate(r.db.WithContext(ctx).Create(image).Error)
}

func (r *postImageRepository) GetByID(ctx context.Context, id uint) (*models.PostImage, error) {
	var image models.PostImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *postImageRepository) ListByPost(ctx context.Context, postID uint) ([]models.PostImage, error) {
	images := []models.PostImage{}
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&images).Error
	return images, err
}

func (r *postImageRepository) Update(ctx context.Context, image *models.PostImage) error {
	err := r.db.WithContext(ctx).Model(image).
		Select("image_url", "original_filename").
		Updates(image).Error
	return translate(err)
}

func (r *postImageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.PostImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
