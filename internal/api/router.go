package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/notevault/notevault/internal/handler"
	"github.com/notevault/notevault/internal/middleware"
)

func SetupRouter(
	userHandler *handler.UserHandler,
	noteHandler *handler.NoteHandler,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.SetTrustedProxies(nil)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// User routes
	userGroup := r.Group("/user")
	{
		userGroup.POST("", userHandler.Register)
		userGroup.GET("/list", userHandler.List)
		userGroup.GET("/:id", userHandler.GetByID)
		userGroup.PUT("/:id", userHandler.Update)
		userGroup.DELETE("/:id", userHandler.Delete)
	}

	// Note routes
	noteGroup := r.Group("/notes")
	{
		noteGroup.GET("", noteHandler.ListAll)
		noteGroup.POST("/:userId", noteHandler.Create)
		noteGroup.GET("/:userId", noteHandler.ListForUser)
		noteGroup.PUT("/:noteId", noteHandler.Update)
		noteGroup.DELETE("/:noteId", noteHandler.Delete)
	}

	return r
}
