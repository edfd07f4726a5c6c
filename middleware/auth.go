package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

const (
	// ContextUserKey is the key used to store the authenticated *models.User in Gin context.
	ContextUserKey = "current_user"
	// ContextClaimsKey stores the verified token claims inside Gin context.
	ContextClaimsKey = "token_claims"
)

// AuthRequired verifies the bearer token and loads the acting user.
// Unknown users and bad tokens get 401; deactivated accounts get 400.
func AuthRequired(tokens *utils.TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(ctx, 40101, "authorization header missing")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Unauthorized(ctx, 40102, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			utils.Unauthorized(ctx, 40103, "empty bearer token")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			utils.Unauthorized(ctx, 40105, "could not validate credentials")
			return
		}

		if utils.IsTokenBlacklisted(ctx.Request.Context(), claims.ID) {
			utils.Unauthorized(ctx, 40104, "token revoked")
			return
		}

		userID, _ := claims.UserID()
		user, err := users.GetByID(ctx.Request.Context(), userID)
		if errors.Is(err, repository.ErrNotFound) {
			utils.Unauthorized(ctx, 40106, "could not validate credentials")
			return
		}
		if err != nil {
			utils.Logger.Error("load authenticated user", zap.Uint("user_id", userID), zap.Error(err))
			utils.Error(ctx, http.StatusInternalServerError, 50001, "internal server error")
			return
		}
		if !user.IsActive {
			utils.Error(ctx, http.StatusBadRequest, 40001, "inactive account")
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Set(ContextClaimsKey, claims)
		ctx.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// CurrentClaims returns the token claims stored by AuthRequired.
func CurrentClaims(ctx *gin.Context) (*utils.Claims, bool) {
	v, ok := ctx.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}
