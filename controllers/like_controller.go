package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/community/middleware"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// LikeController toggles and counts likes.
type LikeController struct {
	posts repository.PostRepository
	likes repository.LikeRepository
}

// NewLikeController creates a new LikeController instance.
func NewLikeController(posts repository.PostRepository, likes repository.LikeRepository) *LikeController {
	return &LikeController{posts: posts, likes: likes}
}

// ToggleLike flips the authenticated user's like on a post.
func (l *LikeController) ToggleLike(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Unauthorized(ctx, 40110, "could not validate credentials")
		return
	}
	rc := ctx.Request.Context()
	if _, err := l.posts.GetByID(rc, postID); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}

	like, err := l.likes.Toggle(rc, user.ID, postID)
	if err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	n, err := l.likes.CountByPost(rc, postID)
	if err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, gin.H{"post_id": postID, "is_liked": like.IsLiked, "likes_count": n})
}

// CountLikes returns the number of active likes on a post.
func (l *LikeController) CountLikes(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	rc := ctx.Request.Context()
	if _, err := l.posts.GetByID(rc, postID); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	n, err := l.likes.CountByPost(rc, postID)
	if err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	utils.Success(ctx, gin.H{"post_id": postID, "likes_count": n})
}
