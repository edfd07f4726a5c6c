package models

// PostImage references an externally hosted image attached to a post.
type PostImage struct {
	ID               uint    `gorm:"primaryKey" json:"post_image_id"`
	PostID           uint    `gorm:"index;not null" json:"post_id"`
	ImageURL         *string `gorm:"type:text" json:"image_url"`
	OriginalFilename *string `gorm:"size:255" json:"original_filename"`
}

// PostImagePatch carries the optional fields of an image update.
type PostImagePatch struct {
	ImageURL         *string `json:"image_url"`
	OriginalFilename *string `json:"original_filename" binding:"omitempty,max=255"`
}

// Apply copies the supplied fields onto img.
func (p PostImagePatch) Apply(img *PostImage) {
	if p.ImageURL != nil {
		img.ImageURL = p.ImageURL
	}
	if p.OriginalFilename != nil {
		img.OriginalFilename = p.OriginalFilename
	}
}
