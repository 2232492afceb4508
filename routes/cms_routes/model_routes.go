package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/model_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

func SetupModelRoutes(rg *gin.RouterGroup) {
	model := rg.Group("/models")

	model.GET("", model_controller.GetModels)

	protected := model.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", model_controller.CreateModel)
		protected.PATCH("/:id", model_controller.UpdateModel)
		protected.DELETE("/:id", model_controller.DeleteModel)
	}
}
