package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// PostImageController manages image references attached to posts.
type PostImageController struct {
	posts  repository.PostRepository
	images repository.PostImageRepository
}

// NewPostImageController creates a new PostImageController instance.
func NewPostImageController(posts repository.PostRepository, images repository.PostImageRepository) *PostImageController {
	return &PostImageController{posts: posts, images: images}
}

// ListImages returns a post's images in insertion order.
func (p *PostImageController) ListImages(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, err := p.posts.GetByID(ctx.Request.Context(), postID); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	images, err := p.images.ListByPost(ctx.Request.Context(), postID)
	if err != nil {
		respondError(ctx, err, "Image not found")
		return
	}
	utils.Success(ctx, images)
}

// AddImage attaches an externally hosted image to a post.
func (p *PostImageController) AddImage(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		ImageURL         *string `json:"image_url" binding:"omitempty,url"`
		OriginalFilename *string `json:"original_filename" binding:"omitempty,max=255"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	if _, err := p.posts.GetByID(ctx.Request.Context(), postID); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}

	img := &models.PostImage{PostID: postID, ImageURL: req.ImageURL, OriginalFilename: req.OriginalFilename}
	if err := p.images.Create(ctx.Request.Context(), img); err != nil {
		respondError(ctx, err, "Image not found")
		return
	}
	utils.Success(ctx, img)
}

// UpdateImage applies a partial update to an image reference.
func (p *PostImageController) UpdateImage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var patch models.PostImagePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	img, err := p.images.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Image not found")
		return
	}
	patch.Apply(img)
	if err := p.images.Update(ctx.Request.Context(), img); err != nil {
		respondError(ctx, err, "Image not found")
		return
	}
	utils.Success(ctx, img)
}

// DeleteImage detaches an image from its post.
func (p *PostImageController) DeleteImage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := p.images.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Image not found")
		return
	}
	utils.Success(ctx, deleted("Image"))
}
