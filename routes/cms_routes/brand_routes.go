package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/brand_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

func SetupBrandRoutes(rg *gin.RouterGroup) {
	brand := rg.Group("/brands")

	brand.GET("", brand_controller.GetBrands)

	protected := brand.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", brand_controller.CreateBrand)
		protected.PATCH("/:id", brand_controller.UpdateBrand)
		protected.DELETE("/:id", brand_controller.DeleteBrand)
	}
}
