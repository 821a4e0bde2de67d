package handlers

import (
	"net/http"

	"crow/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List returns all categories with post counts.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// Create makes a category explicitly (the same get-or-create the post form
// uses, exposed so the UI can add one before submitting a post).
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := services.GetOrCreateCategory(req.Name)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid category name")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
	})
}
