package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/services"
	"github.com/cppla/community/utils"
)

// respondError maps a domain error onto the HTTP taxonomy. notFound is the
// detail used when the primary resource of the handler is missing.
func respondError(ctx *gin.Context, err error, notFound string) {
	var pe *services.ProviderError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.Error(ctx, http.StatusNotFound, 40400, notFound)
	case errors.Is(err, repository.ErrConflict):
		utils.Error(ctx, http.StatusConflict, 40900, "conflicting write, please retry")
	case errors.As(err, &pe):
		utils.Error(ctx, http.StatusBadRequest, 40010, pe.Error())
	case errors.Is(err, models.ErrPointsDecrease), errors.Is(err, models.ErrInvalidCategoryStatus):
		utils.Error(ctx, http.StatusBadRequest, 40020, err.Error())
	default:
		utils.Logger.Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
		utils.Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
	}
}

// badRequest reports a payload that failed binding or validation.
func badRequest(ctx *gin.Context, err error) {
	utils.Error(ctx, http.StatusBadRequest, 40000, "invalid request payload: "+err.Error())
}

// pathID parses a positive integer path parameter. On failure it has already responded.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// deleted is the body returned by every successful delete.
func deleted(what string) gin.H {
	return gin.H{"detail": what + " deleted"}
}
