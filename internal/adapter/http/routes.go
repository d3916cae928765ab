package http

import (
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Users  *handlers.UserHandler
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
	// Identity guards the task routes.
	Identity gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/users", h.Users.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	tasks := api.Group("/tasks")
	tasks.Use(h.Identity)
	{
		tasks.POST("", h.Tasks.CreateTask)
		tasks.GET("", h.Tasks.ListTasks)
		tasks.GET("/:id", h.Tasks.GetTask)
		tasks.PUT("/:id", h.Tasks.UpdateTask)
		tasks.DELETE("/:id", h.Tasks.DeleteTask)
		tasks.PATCH("/:id/status", h.Tasks.MoveTask)
	}
}
