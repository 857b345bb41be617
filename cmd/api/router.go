package api

import (
	"net/http"

	"task-manager-api/internal/auth/delivery"
	authUsecase "task-manager-api/internal/auth/usecase"
	taskDelivery "task-manager-api/internal/task/delivery"
	taskUsecasePkg "task-manager-api/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, taskUsecase taskUsecasePkg.TaskUsecase) {
	userHandler := delivery.NewUserHandler(authUsecase)
	taskHandler := taskDelivery.NewTaskHandler(taskUsecase)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		// Public routes
		users.POST("", userHandler.Signup)
		users.POST("/login", userHandler.Login)
		users.GET("/:id/avatar", userHandler.GetAvatar)

		// Account routes (protected)
		account := users.Group("")
		account.Use(delivery.AuthMiddleware(authUsecase))
		{
			account.POST("/logout", userHandler.Logout)
			account.POST("/logoutAll", userHandler.LogoutAll)
			account.GET("/me", userHandler.Me)
			account.PATCH("/me", userHandler.UpdateProfile)
			account.DELETE("/me", userHandler.DeleteProfile)
			account.POST("/me/avatar", userHandler.UploadAvatar)
			account.DELETE("/me/avatar", userHandler.DeleteAvatar)
		}
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(delivery.AuthMiddleware(authUsecase))
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.GetTasks)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
