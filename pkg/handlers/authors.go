package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/models"
	"docs-admin/pkg/services"
)

// ListAuthors returns the author registry keyed by slug.
func ListAuthors(c *gin.Context) {
	authors, err := services.LoadAuthors(config.AuthorsFile())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

type authorRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	URL         string `json:"url"`
}

func (r authorRequest) model() models.Author {
	return models.Author{
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		URL:         r.URL,
	}
}

// CreateAuthor adds a registry entry keyed by the author's name.
func CreateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	key, err := services.CreateAuthor(config.AuthorsFile(), req.model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Author created successfully", "key": key})
}

// UpdateAuthor rewrites an existing registry entry.
func UpdateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := services.UpdateAuthor(config.AuthorsFile(), c.Param("key"), req.model()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Author updated successfully"})
}
