package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/community/middleware"
	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// postDetail is the single-post payload with its related rows attached.
type postDetail struct {
	models.Post
	User       *models.User       `json:"user"`
	Category   *categoryView      `json:"category"`
	PostImages []models.PostImage `json:"post_images"`
	Comments   []models.Comment   `json:"comments"`
	LikesCount int64              `json:"likes_count"`
}

// PostController manages CRUD operations for posts.
type PostController struct {
	repos *repository.Repositories
}

// NewPostController creates a new PostController instance.
func NewPostController(repos *repository.Repositories) *PostController {
	return &PostController{repos: repos}
}

// ListPosts returns posts filtered by ?keyword= and ?category_id=.
func (p *PostController) ListPosts(ctx *gin.Context) {
	var filter repository.PostFilter
	filter.Keyword = ctx.Query("keyword")
	if raw := ctx.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40002, "invalid category_id")
			return
		}
		cid := uint(id)
		filter.CategoryID = &cid
	}

	posts, err := p.repos.Post.List(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, posts)
}

// GetPost returns one post with author, category, images, comments and like count.
// The view is counted after the snapshot is read, so the response shows the count before this fetch.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	rc := ctx.Request.Context()

	post, err := p.repos.Post.GetByID(rc, id)
	if err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	if err := p.repos.Post.IncrementViewCount(rc, id); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}

	detail := postDetail{Post: *post}
	if author, err := p.repos.User.GetByID(rc, post.UserID); err == nil {
		detail.User = author
	} else if !errors.Is(err, repository.ErrNotFound) {
		respondError(ctx, err, "Post not found")
		return
	}
	if cat, err := p.repos.Category.GetByID(rc, post.CategoryID); err == nil {
		v := viewCategory(*cat)
		detail.Category = &v
	} else if !errors.Is(err, repository.ErrNotFound) {
		respondError(ctx, err, "Post not found")
		return
	}
	if detail.PostImages, err = p.repos.PostImage.ListByPost(rc, id); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	if detail.Comments, err = p.repos.Comment.ListByPost(rc, id); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	if detail.LikesCount, err = p.repos.Like.CountByPost(rc, id); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, detail)
}

// CreatePost files a new post under the authenticated user.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required,max=255"`
		Content    string `json:"content" binding:"required"`
		CategoryID uint   `json:"category_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Unauthorized(ctx, 40110, "could not validate credentials")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "title cannot be empty")
		return
	}
	if _, err := p.repos.Category.GetByID(ctx.Request.Context(), req.CategoryID); err != nil {
		respondError(ctx, err, "Category not found")
		return
	}

	post := &models.Post{
		Title:      title,
		Content:    utils.Sanitize(req.Content),
		UserID:     user.ID,
		CategoryID: req.CategoryID,
	}
	if err := p.repos.Post.Create(ctx.Request.Context(), post); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, post)
}

// UpdatePost applies a partial update.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var patch models.PostPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	rc := ctx.Request.Context()

	post, err := p.repos.Post.GetByID(rc, id)
	if err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			utils.Error(ctx, http.StatusBadRequest, 40021, "title cannot be empty")
			return
		}
		patch.Title = &t
	}
	if patch.Content != nil {
		c := utils.Sanitize(*patch.Content)
		patch.Content = &c
	}
	if patch.CategoryID != nil {
		if _, err := p.repos.Category.GetByID(rc, *patch.CategoryID); err != nil {
			respondError(ctx, err, "Category not found")
			return
		}
	}

	patch.Apply(post, time.Now())
	if err := p.repos.Post.Update(rc, post); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, post)
}

// DeletePost removes a post with its comments, images and likes.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := p.repos.Post.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, deleted("Post"))
}
