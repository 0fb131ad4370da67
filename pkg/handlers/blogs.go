package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/services"
)

// ListBlogs returns every blog post, newest first.
func ListBlogs(c *gin.Context) {
	posts, err := services.ListBlogPosts(config.BlogDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type blogRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// CreateBlog writes a new date-prefixed post file.
func CreateBlog(c *gin.Context) {
	var req blogRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	filename, err := services.CreateBlogPost(config.BlogDir(), req.Title, req.Content, req.Author, req.Tags, req.Published)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post created successfully", "filename": filename})
}

// UpdateBlog rewrites an existing post.
func UpdateBlog(c *gin.Context) {
	var req blogRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	err := services.UpdateBlogPost(config.BlogDir(), docID(c), req.Title, req.Content, req.Author, req.Tags, req.Published)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post updated successfully"})
}

// DeleteBlog unlinks a post by id.
func DeleteBlog(c *gin.Context) {
	if err := services.DeleteBlogPost(config.BlogDir(), docID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
