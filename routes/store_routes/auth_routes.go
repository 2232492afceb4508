package store_routes

import (
	"github.com/gin-gonic/gin"

	store_auth "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/auth_controller"
)

// SetupStoreAuthRoutes registers customer authentication (Google OAuth)
func SetupStoreAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", store_auth.GoogleLogin)
		auth.GET("/google/callback", store_auth.GoogleCallback)
		auth.POST("/logout", store_auth.Logout)
	}
}
