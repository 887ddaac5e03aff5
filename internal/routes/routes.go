package routes

import (
	"jobbridge_backend/internal/auth"
	"jobbridge_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP-маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokenManager *auth.TokenManager,
	sensitiveLimiter gin.HandlerFunc,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, tokenManager, sensitiveLimiter)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}
}
