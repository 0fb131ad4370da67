package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/services"
)

// internalError logs the cause and answers with a generic body. Raw error
// strings stay out of responses.
func internalError(c *gin.Context, err error) {
	slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var notEmpty *services.NotEmptyError
	var boundary *services.BoundaryError

	switch {
	case errors.As(err, &notEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Cannot delete category %q. It contains %d document(s). Please move or delete all documents first.",
				notEmpty.CategoryID, notEmpty.DocumentCount),
			"documentCount": notEmpty.DocumentCount,
		})
	case errors.As(err, &boundary):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBadFrontmatter):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		internalError(c, err)
	}
}
