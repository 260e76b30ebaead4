package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/models"
)

// CategoryHandler serves the suggested expense categories.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories returns the suggested categories in display order.
// @Summary     List suggested categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} map[string]interface{} "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.SuggestedCategories})
}
