package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/league_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

func SetupLeagueRoutes(rg *gin.RouterGroup) {
	league := rg.Group("/leagues")

	league.GET("", league_controller.GetLeagues)

	protected := league.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", league_controller.CreateLeague)
		protected.PATCH("/:id", league_controller.UpdateLeague)
		protected.DELETE("/:id", league_controller.DeleteLeague)
	}
}
