package models

import (
	"errors"
	"time"
)

// ErrPointsDecrease is returned when a patch would lower a user's point total.
var ErrPointsDecrease = errors.New("total_points can only increase")

// DefaultNickname is used when the identity provider supplies no nickname.
const DefaultNickname = "Anonymous"

// User is a board member identified by an external social login id.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	SocialID     string    `gorm:"size:255;not null;uniqueIndex" json:"social_id"`
	Nickname     string    `gorm:"size:255;not null" json:"nickname"`
	ProfileImage *string   `gorm:"type:text" json:"profile_image"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	TotalPoints  int       `gorm:"not null;default:0" json:"total_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries the fields a user update may change. SocialID is never patchable.
type UserPatch struct {
	Nickname     *string `json:"nickname" binding:"omitempty,min=1,max=255"`
	ProfileImage *string `json:"profile_image"`
	TotalPoints  *int    `json:"total_points" binding:"omitempty,min=0"`
}

// Apply copies the supplied fields onto u and refreshes UpdatedAt.
func (p UserPatch) Apply(u *User, now time.Time) error {
	if p.TotalPoints != nil && *p.TotalPoints < u.TotalPoints {
		return ErrPointsDecrease
	}
	if p.Nickname != nil {
		u.Nickname = *p.Nickname
	}
	if p.ProfileImage != nil {
		u.ProfileImage = p.ProfileImage
	}
	if p.TotalPoints != nil {
		u.TotalPoints = *p.TotalPoints
	}
	u.UpdatedAt = now
	return nil
}

// NewSocialUser builds an active, non-admin user with zero points for a first login.
func NewSocialUser(socialID, nickname string, profileImage *string) *User {
	if nickname == "" {
		nickname = DefaultNickname
	}
	return &User{
		SocialID:     socialID,
		Nickname:     nickname,
		ProfileImage: profileImage,
		IsActive:     true,
	}
}
