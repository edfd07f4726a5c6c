package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// categoryView adds the board name to a stored category.
type categoryView struct {
	models.Category
	Description string `json:"description"`
}

func viewCategory(c models.Category) categoryView {
	return categoryView{Category: c, Description: c.Status.Description()}
}

// CategoryController manages the fixed set of boards.
type CategoryController struct {
	categories repository.CategoryRepository
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(categories repository.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

// ListCategories returns every board, creating missing ones on first use.
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	cats, err := c.categories.EnsureDefaults(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	out := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, viewCategory(cat))
	}
	utils.Success(ctx, out)
}

// GetCategory returns one board.
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	cat, err := c.categories.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	utils.Success(ctx, viewCategory(*cat))
}

// CreateCategory adds a board for a status that has none yet.
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req struct {
		Status models.CategoryStatus `json:"category_status" binding:"required,category_status"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	cat := &models.Category{Status: req.Status}
	if err := c.categories.Create(ctx.Request.Context(), cat); err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	utils.Success(ctx, viewCategory(*cat))
}

// UpdateCategory changes a board's status.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var patch models.CategoryPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		badRequest(ctx, err)
		return
	}

	cat, err := c.categories.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	if err := patch.Apply(cat, time.Now()); err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	if err := c.categories.Update(ctx.Request.Context(), cat); err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	utils.Success(ctx, viewCategory(*cat))
}

// DeleteCategory removes a board with all of its posts.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.categories.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Category not found")
		return
	}
	utils.Success(ctx, deleted("Category"))
}
