package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути повторяют внешний контракт: аутентификация и вакансии публичны,
// закладки закрыты auth-middleware.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, jwtSecret string) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := ginRouter.Group("/")
	{
		appHandlers.AuthHandler.RegisterRoutes(public)
		appHandlers.JobHandler.RegisterRoutes(public)
	}

	protected := ginRouter.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		appHandlers.SavedJobsHandler.RegisterRoutes(protected)
	}
}
