package repository

import "gorm.io/gorm"

// Repositories bundles every repository built over one connection pool.
type Repositories struct {
	User      UserRepository
	Category  CategoryRepository
	Post      PostRepository
	Comment   CommentRepository
	PostImage PostImageRepository
	Like      LikeRepository
}

// NewRepositories creates all repositories sharing db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Category:  NewCategoryRepository(db),
		Post:      NewPostRepository(db),
		Comment:   NewCommentRepository(db),
		PostImage: NewPostImageRepository(db),
		Like:      NewLikeRepository(db),
	}
}
