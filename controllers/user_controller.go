package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/community/middleware"
	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// UserController exposes user profiles.
type UserController struct {
	users repository.UserRepository
}

// NewUserController creates a new UserController instance.
func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{users: users}
}

// Me returns the authenticated user.
func (u *UserController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Unauthorized(ctx, 40110, "could not validate credentials")
		return
	}
	utils.Success(ctx, user)
}

// GetUser returns one user's public profile.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	user, err := u.users.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	utils.Success(ctx, user)
}

// CreateUser registers a user directly by social id.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		SocialID     string  `json:"social_id" binding:"required,max=255"`
		Nickname     string  `json:"nickname" binding:"max=255"`
		ProfileImage *string `json:"profile_image"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	user := models.NewSocialUser(req.SocialID, req.Nickname, req.ProfileImage)
	if err := u.users.Create(ctx.Request.Context(), user); err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	utils.Success(ctx, user)
}

// UpdateUser applies a partial profile update.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var patch models.UserPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}

	user, err := u.users.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	if err := patch.Apply(user, time.Now()); err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	if err := u.users.Update(ctx.Request.Context(), user); err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	utils.Success(ctx, user)
}

// DeleteUser removes the user and everything the user authored.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := u.users.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	utils.Success(ctx, deleted("User"))
}
