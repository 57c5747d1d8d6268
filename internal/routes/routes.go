package routes

import (
	"net/http"

	"taskflow_backend/internal/auth"
	"taskflow_backend/internal/handlers"
	"taskflow_backend/internal/middleware"
	"taskflow_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes. Auth routes stay public; the
// whole board hierarchy sits behind the Bearer-token middleware.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(tokens, userRepo))
		{
			appHandlers.WorkspaceHandler.RegisterRoutes(protected)
			appHandlers.BoardHandler.RegisterRoutes(protected)
			appHandlers.ColumnHandler.RegisterRoutes(protected)
			appHandlers.CardHandler.RegisterRoutes(protected)
		}
	}
}
