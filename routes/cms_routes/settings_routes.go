package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/settings_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/config")

	settings.GET("/:module", settings_controller.GetStoreConfig)

	protected := settings.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.PUT("/:module", settings_controller.UpdateStoreConfig)
	}
}
