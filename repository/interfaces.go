package repository

import (
	"context"

	"github.com/cppla/community/models"
)

// PostFilter narrows a post listing. Zero values mean "no filter".
type PostFilter struct {
	Keyword    string
	CategoryID *uint
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetBySocialID(ctx context.Context, socialID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository defines the interface for category-related database operations
type CategoryRepository interface {
	EnsureDefaults(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

// PostRepository defines the interface for post-related database operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IncrementViewCount(ctx context.Context, id uint) error
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

// PostImageRepository defines the interface for post image database operations
type PostImageRepository interface {
	Create(ctx context.Context, image *models.PostImage) error
	GetByID(ctx context.Context, id uint) (*models.PostImage, error)
	ListByPost(ctx context.Context, postID uint) ([]models.PostImage, error)
	Update(ctx context.Context, image *models.PostImage) error
	Delete(ctx context.Context, id uint) error
}

// LikeRepository defines the interface for like-related database operations
type LikeRepository interface {
	Toggle(ctx context.Context, userID, postID uint) (*models.Like, error)
	Get(ctx context.Context, userID, postID uint) (*models.Like, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}
