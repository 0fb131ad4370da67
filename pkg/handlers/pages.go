package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/services"
)

// ListPages returns the standalone markdown pages.
func ListPages(c *gin.Context) {
	pages, err := services.ListPages(config.PagesDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// CreatePage writes a new standalone page.
func CreatePage(c *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := services.CreatePage(config.PagesDir(), req.Title, req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page created successfully"})
}
