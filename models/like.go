package models

import "time"

// Like records one user's reaction to one post. The (user, post) pair is the key,
// so toggling flips IsLiked instead of inserting and deleting rows.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false;index" json:"post_id"`
	IsLiked   bool      `gorm:"not null;default:false" json:"is_liked"`
	CreatedAt time.Time `json:"created_at"`
}

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Category{}, &Post{}, &Comment{}, &PostImage{}, &Like{}}
}
