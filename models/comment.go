package models

import "time"

// Comment is a reply to a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"comment_id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentPatch carries the optional fields of a comment update.
type CommentPatch struct {
	Content *string `json:"content" binding:"omitempty,min=1"`
}

// Apply copies the supplied fields onto c and refreshes UpdatedAt.
func (p CommentPatch) Apply(c *Comment, now time.Time) {
	if p.Content != nil {
		c.Content = *p.Content
	}
	c.UpdatedAt = now
}
