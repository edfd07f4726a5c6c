package models

import (
	"errors"
	"time"
)

// ErrInvalidCategoryStatus is returned for a status outside the fixed set.
var ErrInvalidCategoryStatus = errors.New("invalid category status")

// CategoryStatus classifies a board. The set of values is closed.
type CategoryStatus string

const (
	CategoryFree     CategoryStatus = "FREE"
	CategoryTip      CategoryStatus = "TIP"
	CategoryQuestion CategoryStatus = "QUESTION"
)

// CategoryStatuses returns every status in display order.
func CategoryStatuses() []CategoryStatus {
	return []CategoryStatus{CategoryFree, CategoryTip, CategoryQuestion}
}

// Valid reports whether s is one of the known statuses.
func (s CategoryStatus) Valid() bool {
	switch s {
	case CategoryFree, CategoryTip, CategoryQuestion:
		return true
	}
	return false
}

// Description returns the human readable board name for s.
func (s CategoryStatus) Description() string {
	switch s {
	case CategoryFree:
		return "자유게시판"
	case CategoryTip:
		return "팁게시판"
	case CategoryQuestion:
		return "질문게시판"
	default:
		return ""
	}
}

// Category groups posts. At most one row exists per status.
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"category_id"`
	Status    CategoryStatus `gorm:"column:category_status;size:16;not null;uniqueIndex" json:"category_status"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

// CategoryPatch changes a category's status.
type CategoryPatch struct {
	Status *CategoryStatus `json:"category_status" binding:"omitempty,category_status"`
}

// Apply copies the supplied fields onto c and refreshes UpdatedAt.
func (p CategoryPatch) Apply(c *Category, now time.Time) error {
	if p.Status != nil {
		if !p.Status.Valid() {
			return ErrInvalidCategoryStatus
		}
		c.Status = *p.Status
	}
	c.UpdatedAt = now
	return nil
}
