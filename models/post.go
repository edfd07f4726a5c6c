package models

import "time"

// Post is an article authored by a user inside one category.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"post_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ViewCount  int       `gorm:"not null;default:0" json:"view_count"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	CategoryID uint      `gorm:"index;not null" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostPatch carries the optional fields of a post update.
type PostPatch struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content    *string `json:"content"`
	CategoryID *uint   `json:"category_id" binding:"omitempty,min=1"`
}

// Apply copies the supplied fields onto p and refreshes UpdatedAt.
func (patch PostPatch) Apply(p *Post, now time.Time) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	p.UpdatedAt = now
}
