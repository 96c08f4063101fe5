package main

import (
	"net/http"

	"bookcatalog-backend/internal/shared/middleware"
	"bookcatalog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ErrorHandler(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		books := v1.Group("/books")
		{
			books.GET("", c.BookHandler.ListBooks)
			books.POST("", c.BookHandler.CreateBook)
			books.PUT("/:id", c.BookHandler.UpdateBook)
			books.DELETE("/:id", c.BookHandler.DeleteBook)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "up" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"success":     dbStatus == "up",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
		})
	}
}
