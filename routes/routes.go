// Package routes holds the HTTP route table of the API.
package routes

import (
	"net/http"

	"berita-api/handlers"
	"berita-api/helper"
	"berita-api/middleware"
	"berita-api/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Dependencies struct {
	Logger          *zap.Logger
	Helper          *helper.HTTPHelper
	TokenRepo       repositories.TokenRepository
	AuthHandler     *handlers.AuthHandler
	BeritaHandler   *handlers.BeritaHandler
	KomentarHandler *handlers.KomentarHandler
	// StorageRoot is served read-only at /storage when set.
	StorageRoot string
}

func Setup(d Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if d.StorageRoot != "" {
		router.Static("/storage", d.StorageRoot)
	}

	api := router.Group("/api")
	{
		// Public routes (tanpa login)
		api.POST("/register", d.AuthHandler.Register)
		api.POST("/login", d.AuthHandler.Login)

		// Protected routes (butuh token)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(d.Helper, d.TokenRepo))
		{
			protected.GET("/get-user", d.AuthHandler.GetUser)
			protected.POST("/logout", d.AuthHandler.Logout)

			berita := protected.Group("/berita")
			{
				berita.GET("", d.BeritaHandler.ListBerita)
				berita.POST("", d.BeritaHandler.CreateBerita)
				berita.GET("/:id", d.BeritaHandler.GetBerita)
				berita.PUT("/:id", d.BeritaHandler.UpdateBerita)
				berita.DELETE("/:id", d.BeritaHandler.DeleteBerita)
			}

			komentar := protected.Group("/komentar")
			{
				komentar.POST("", d.KomentarHandler.CreateKomentar)
				komentar.DELETE("/:id", d.KomentarHandler.DeleteKomentar)
			}
		}
	}

	return router
}
