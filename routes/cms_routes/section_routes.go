package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/section_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

func SetupSectionRoutes(rg *gin.RouterGroup) {
	section := rg.Group("/sections")

	section.GET("", section_controller.GetSections)

	protected := section.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", section_controller.CreateSection)
		protected.PATCH("/:id", section_controller.UpdateSection)
		protected.DELETE("/:id", section_controller.DeleteSection)
	}
}
