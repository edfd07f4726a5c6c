package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code   int    `json:"code"`
	Detail string `json:"detail"`
}

// Success writes data as the bare JSON body with status 200.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Error aborts the request with a standard error body.
func Error(ctx *gin.Context, status int, code int, detail string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Code: code, Detail: detail})
}

// Unauthorized aborts with 401 and the bearer challenge header.
func Unauthorized(ctx *gin.Context, code int, detail string) {
	ctx.Header("WWW-Authenticate", "Bearer")
	Error(ctx, http.StatusUnauthorized, code, detail)
}
