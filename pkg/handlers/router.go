package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"docs-admin/pkg/config"
)

// NewRouter builds the admin API engine with all routes mounted.
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/admin")
	{
		api.POST("/login", Login)
		api.GET("/public/navigation", PublicNavigation)

		authorized := api.Group("/")
		authorized.Use(AuthRequired)
		{
			authorized.GET("/verify", Verify)

			authorized.GET("/stats", GetStats)
			authorized.GET("/quick-stats", GetQuickStats)
			authorized.GET("/recent-activity", GetRecentActivity)

			authorized.GET("/docs", ListDocs)
			authorized.POST("/docs", CreateDoc)
			authorized.POST("/docs/move-position", MoveDocPosition)
			authorized.PUT("/docs/:id", UpdateDoc)
			authorized.DELETE("/docs/:id", DeleteDoc)

			authorized.GET("/blogs", ListBlogs)
			authorized.POST("/blogs", CreateBlog)
			authorized.PUT("/blogs/:id", UpdateBlog)
			authorized.DELETE("/blogs/:id", DeleteBlog)

			authorized.GET("/categories", ListCategories)
			authorized.POST("/categories", CreateCategory)
			authorized.POST("/categories/move-position", MoveCategoryPosition)
			authorized.PUT("/categories/:id", UpdateCategory)
			authorized.DELETE("/categories/:id", DeleteCategory)

			authorized.GET("/authors", ListAuthors)
			authorized.POST("/authors", CreateAuthor)
			authorized.PUT("/authors/:key", UpdateAuthor)

			authorized.GET("/pages", ListPages)
			authorized.POST("/pages", CreatePage)

			authorized.GET("/media", ListMedia)
			authorized.POST("/media/upload", UploadMedia)
			authorized.DELETE("/media/:filename", DeleteMedia)

			authorized.GET("/navigation", GetNavigation)
			authorized.PUT("/navigation", PutNavigation)
			authorized.GET("/footer", GetFooter)
			authorized.PUT("/footer", PutFooter)
			authorized.GET("/appearance", GetAppearance)
			authorized.PUT("/appearance", PutAppearance)
			authorized.GET("/settings", GetSettings)
			authorized.PUT("/settings", PutSettings)
		}
	}

	return r
}
