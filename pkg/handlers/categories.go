package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/services"
)

// ListCategories returns the merged default and directory-backed categories.
func ListCategories(c *gin.Context) {
	categories, err := services.ListCategories(config.DocsDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategory makes a new docs category directory with its sidecar.
func CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	category, err := services.CreateCategory(config.DocsDir(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Category created successfully",
		"category": gin.H{"id": category.ID, "name": category.Name, "path": category.ID},
	})
}

// UpdateCategory rewrites a category's sidecar fields.
func UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	category, err := services.UpdateCategory(config.DocsDir(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": gin.H{"id": category.ID, "name": category.Name},
	})
}

// DeleteCategory removes an empty category directory.
func DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := services.DeleteCategory(config.DocsDir(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Category \"" + id + "\" deleted successfully",
		"categoryId": id,
	})
}

// MoveCategoryPosition swaps a category's sidecar position with its
// neighbor. A move past either edge reports moved:false with 200.
func MoveCategoryPosition(c *gin.Context) {
	var req struct {
		CategoryID string `json:"categoryId"`
		Direction  string `json:"direction"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	result, err := services.MoveCategory(config.DocsDir(), req.CategoryID, req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Moved {
		edge := "top"
		if req.Direction == services.DirectionDown {
			edge = "bottom"
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Category is already at the " + edge,
			"moved":   false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Category position updated successfully",
		"moved":      true,
		"categories": result.Categories,
	})
}
