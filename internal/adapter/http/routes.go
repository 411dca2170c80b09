package http

import (
	"github.com/dephea/bitrix-task/internal/adapter/http/handlers"
	"github.com/dephea/bitrix-task/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	commentHandler *handlers.CommentHandler,
) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.POST("/:id/comments", commentHandler.AddComment)
		tasks.GET("/:id/comments", commentHandler.ListComments)
	}

	r.NoRoute(handlers.NotFound)
}
