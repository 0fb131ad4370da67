package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/services"
)

// ListMedia returns the uploads directory contents.
func ListMedia(c *gin.Context) {
	files, err := services.ListMediaFiles(config.UploadsDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// UploadMedia stores a multipart file under the uploads directory.
func UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if header.Size > config.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	info, err := services.SaveMediaFile(config.UploadsDir(), header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filename": info.Filename,
		"path":     info.Path,
		"size":     info.Size,
	})
}

// DeleteMedia removes one uploaded asset.
func DeleteMedia(c *gin.Context) {
	if err := services.DeleteMediaFile(config.UploadsDir(), c.Param("filename")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
