package repository

import (
	"context"

	"github.com/cppla/community/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// EnsureDefaults creates a row for every missing status and returns all categories.
// Concurrent callers race on the unique index; the loser's insert is a no-op.
func (r *categoryRepository) EnsureDefaults(ctx context.Context) ([]models.Category, error) {
	db := r.db.WithContext(ctx)

	var existing []models.Category
	if err := db.Order("id ASC").Find(&existing).Error; err != nil {
		return nil, err
	}
	have := make(map[models.CategoryStatus]bool, len(existing))
	for _, c := range existing {
		have[c.Status] = true
	}

	var missing []models.Category
	for _, s := range models.CategoryStatuses() {
		if !have[s] {
			missing = append(missing, models.Category{Status: s})
		}
	}
	if len(missing) == 0 {
		return existing, nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_status"}},
		DoNothing: true,
	}).Create(&missing).Error
	if err != nil {
		return nil, translate(err)
	}

	var all []models.Category
	if err := db.Order("id ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

// Create inserts a category. A taken status yields ErrConflict.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// Update writes the status column.
func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Model(category).
		Select("category_status", "updated_at").
		Updates(category).Error
	return translate(err)
}

// Delete removes the category and every post filed under it.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Category{}, id).Error; err != nil {
			return err
		}
		if err := deletePostsWhere(tx, "category_id", id); err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	}))
}
