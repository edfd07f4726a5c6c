package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cppla/community/middleware"
	"github.com/cppla/community/services"
	"github.com/cppla/community/utils"
)

// AuthController handles Kakao login and session teardown.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// KakaoURL returns the consent URL together with a single-use state value.
func (a *AuthController) KakaoURL(ctx *gin.Context) {
	state := uuid.NewString()
	utils.SaveState(ctx.Request.Context(), state, utils.DefaultStateTTL)
	utils.Success(ctx, gin.H{"url": a.auth.AuthCodeURL(state), "state": state})
}

// KakaoLogin exchanges a code posted by the frontend and returns the user with a session token.
func (a *AuthController) KakaoLogin(ctx *gin.Context) {
	var req struct {
		Code  string `json:"code" binding:"required"`
		State string `json:"state"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	if !a.checkState(ctx, req.State) {
		return
	}

	res, err := a.auth.Login(ctx.Request.Context(), req.Code)
	if err != nil {
		respondError(ctx, err, "user not found")
		return
	}
	utils.Success(ctx, gin.H{
		"user":         res.User,
		"access_token": res.AccessToken,
		"token_type":   services.TokenType,
	})
}

// KakaoCallback handles the provider redirect carrying ?code= directly.
func (a *AuthController) KakaoCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		utils.Error(ctx, http.StatusBadRequest, 40005, "missing code")
		return
	}
	if !a.checkState(ctx, ctx.Query("state")) {
		return
	}

	res, err := a.auth.Login(ctx.Request.Context(), code)
	if err != nil {
		respondError(ctx, err, "user not found")
		return
	}
	utils.Success(ctx, gin.H{"access_token": res.AccessToken, "token_type": services.TokenType})
}

// Logout revokes the presented token until it would have expired anyway.
func (a *AuthController) Logout(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		utils.Unauthorized(ctx, 40107, "could not validate credentials")
		return
	}
	utils.BlacklistToken(ctx.Request.Context(), claims.ID, claims.ExpiresAt.Time)
	utils.Success(ctx, gin.H{"detail": "logged out"})
}

// checkState enforces a supplied state. Clients that never asked for one may omit it.
func (a *AuthController) checkState(ctx *gin.Context, state string) bool {
	if state == "" {
		return true
	}
	if !utils.ConsumeState(ctx.Request.Context(), state) {
		utils.Error(ctx, http.StatusBadRequest, 40006, "invalid or expired state")
		return false
	}
	return true
}
