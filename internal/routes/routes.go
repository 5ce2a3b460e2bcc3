package routes

import (
	"github.com/gin-gonic/gin"

	"jobportal_backend/internal/handlers"
)

// RegisterRoutes mounts every handler under /api. The auth middleware is
// built once by the app and handed to each handler for its protected groups.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMW)
		appHandlers.JobHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)
		appHandlers.ResumeHandler.RegisterRoutes(api, authMW)
		appHandlers.NotificationHandler.RegisterRoutes(api, authMW)
		appHandlers.PaymentHandler.RegisterRoutes(api, authMW)
	}
}
