package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
	"docs-admin/pkg/models"
	"docs-admin/pkg/services"
)

// GetNavigation returns the stored navbar configuration.
func GetNavigation(c *gin.Context) {
	nav, err := services.LoadNavigation(config.AdminDataDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, nav)
}

// PutNavigation saves the navbar and regenerates the renderer config.
func PutNavigation(c *gin.Context) {
	var req struct {
		Items []models.NavItem `json:"items"`
	}
	if err := c.BindJSON(&req); err != nil || req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid navigation items"})
		return
	}

	nav, err := services.SaveNavigation(config.AdminDataDir(), req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Navigation updated successfully",
		"itemsCount": len(nav.Items),
		"items":      nav.Items,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

// PublicNavigation serves the navbar to the renderer without auth.
func PublicNavigation(c *gin.Context) {
	nav, err := services.LoadNavigation(config.AdminDataDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"navbar": nav})
}

// GetFooter returns the stored footer configuration.
func GetFooter(c *gin.Context) {
	footer, err := services.LoadFooter(config.AdminDataDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, footer)
}

// PutFooter saves the footer and regenerates the renderer config.
func PutFooter(c *gin.Context) {
	var req models.Footer
	if err := c.BindJSON(&req); err != nil || req.Links == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid footer links structure"})
		return
	}

	footer, err := services.SaveFooter(config.AdminDataDir(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Footer updated successfully",
		"linksCount": len(footer.Links),
		"footerData": footer,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

// GetAppearance returns the stored theme settings.
func GetAppearance(c *gin.Context) {
	appearance, err := services.LoadAppearance(config.AdminDataDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, appearance)
}

// PutAppearance saves the theme and regenerates the renderer config.
func PutAppearance(c *gin.Context) {
	var req models.Appearance
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appearance data"})
		return
	}

	if err := services.SaveAppearance(config.AdminDataDir(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Appearance updated successfully",
		"settings":  req,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetSettings returns the stored site metadata.
func GetSettings(c *gin.Context) {
	settings, err := services.LoadSettings(config.AdminDataDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutSettings merges and saves the site metadata, regenerating the renderer
// config.
func PutSettings(c *gin.Context) {
	var req models.Settings
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings data"})
		return
	}

	settings, err := services.SaveSettings(config.AdminDataDir(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}

// GetStats returns dashboard counts.
func GetStats(c *gin.Context) {
	stats, err := services.CollectStats(config.DocsDir(), config.BlogDir(), config.UploadsDir(), config.AuthorsFile())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetQuickStats returns week-over-week activity counts.
func GetQuickStats(c *gin.Context) {
	stats, err := services.CollectQuickStats(config.DocsDir(), config.BlogDir(), config.UploadsDir())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRecentActivity returns the latest content modifications.
func GetRecentActivity(c *gin.Context) {
	activity, err := services.CollectRecentActivity(config.DocsDir(), config.BlogDir(), 5)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
