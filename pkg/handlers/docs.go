package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/services"
)

// ListDocs returns every document under the docs tree.
func ListDocs(c *gin.Context) {
	docs, err := services.ListDocuments(config.DocsDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

type docRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Position int    `json:"position"`
	FilePath string `json:"filePath"`
}

// CreateDoc writes a new document file.
func CreateDoc(c *gin.Context) {
	var req docRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	filePath, err := services.CreateDocument(config.DocsDir(), req.Title, req.Content, req.Category, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Documentation created successfully", "filePath": filePath})
}

// docID decodes the URL path parameter into the document identifier.
func docID(c *gin.Context) string {
	id := c.Param("id")
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

// UpdateDoc rewrites a document located by filePath hint or id.
func UpdateDoc(c *gin.Context) {
	var req docRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	err := services.UpdateDocument(config.DocsDir(), docID(c), req.FilePath, req.Title, req.Content, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Documentation updated successfully"})
}

// DeleteDoc unlinks a document located by filePath hint or id.
func DeleteDoc(c *gin.Context) {
	var req struct {
		FilePath string `json:"filePath"`
	}
	// Body is optional on delete.
	_ = c.ShouldBindJSON(&req)

	if err := services.DeleteDocument(config.DocsDir(), docID(c), req.FilePath); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Documentation deleted successfully"})
}

// MoveDocPosition swaps a document's position with its neighbor.
func MoveDocPosition(c *gin.Context) {
	var req struct {
		FilePath  string `json:"filePath"`
		Direction string `json:"direction"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.FilePath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File path is required"})
		return
	}

	fullPath := services.SafeJoin(config.DocsDir(), "", req.FilePath)
	if fullPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file path"})
		return
	}

	result, err := services.MoveDocument(fullPath, req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Document moved " + req.Direction + " successfully",
		"from":        result.From,
		"to":          result.To,
		"newPosition": result.NewPosition,
	})
}
