package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/community/middleware"
	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// CommentController manages comments on posts.
type CommentController struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(posts repository.PostRepository, comments repository.CommentRepository) *CommentController {
	return &CommentController{posts: posts, comments: comments}
}

// ListComments returns the comments of a post, oldest first.
func (c *CommentController) ListComments(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.posts.GetByID(ctx.Request.Context(), postID); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}
	comments, err := c.comments.ListByPost(ctx.Request.Context(), postID)
	if err != nil {
		respondError(ctx, err, "Comment not found")
		return
	}
	utils.Success(ctx, comments)
}

// GetComment returns one comment.
func (c *CommentController) GetComment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	comment, err := c.comments.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Comment not found")
		return
	}
	utils.Success(ctx, comment)
}

// CreateComment adds a comment authored by the authenticated user.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		Content string `json:"content" binding:"required"`
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

	content := utils.Sanitize(req.Content)
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40030, "content cannot be empty")
		return
	}
	if _, err := c.posts.GetByID(ctx.Request.Context(), postID); err != nil {
		respondError(ctx, err, "Post not found")
		return
	}

	comment := &models.Comment{PostID: postID, UserID: user.ID, Content: content}
	if err := c.comments.Create(ctx.Request.Context(), comment); err != nil {
		respondError(ctx, err, "Comment not found")
		return
	}
	utils.Success(ctx, comment)
}

// UpdateComment lets the author edit a comment.
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var patch models.CommentPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}
	comment, ok := c.ownedComment(ctx, id, 0)
	if !ok {
		return
	}
	if patch.Content != nil {
		content := utils.Sanitize(*patch.Content)
		if content == "" {
			utils.Error(ctx, http.StatusBadRequest, 40030, "content cannot be empty")
			return
		}
		patch.Content = &content
	}

	patch.Apply(comment, time.Now())
	if err := c.comments.Update(ctx.Request.Context(), comment); err != nil {
		respondError(ctx, err, "Comment not found")
		return
	}
	utils.Success(ctx, comment)
}

// DeleteComment lets the author remove a comment by id.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	c.deleteOwned(ctx, id, 0)
}

// DeletePostComment removes a comment addressed through its post.
func (c *CommentController) DeletePostComment(ctx *gin.Context) {
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	id, ok := pathID(ctx, "comment_id")
	if !ok {
		return
	}
	c.deleteOwned(ctx, id, postID)
}

func (c *CommentController) deleteOwned(ctx *gin.Context, id, postID uint) {
	if _, ok := c.ownedComment(ctx, id, postID); !ok {
		return
	}
	if err := c.comments.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Comment not found")
		return
	}
	utils.Success(ctx, deleted("Comment"))
}

// ownedComment loads comment id and checks the acting user wrote it.
// A non-zero postID additionally requires the comment to belong to that post.
func (c *CommentController) ownedComment(ctx *gin.Context, id, postID uint) (*models.Comment, bool) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Unauthorized(ctx, 40110, "could not validate credentials")
		return nil, false
	}
	comment, err := c.comments.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Comment not found")
		return nil, false
	}
	if postID != 0 && comment.PostID != postID {
		utils.Error(ctx, http.StatusNotFound, 40400, "Comment not found")
		return nil, false
	}
	if comment.UserID != user.ID {
		utils.Error(ctx, http.StatusForbidden, 40320, "Not authorized to modify this comment")
		return nil, false
	}
	return comment, true
}
