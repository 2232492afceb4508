package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/question_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

func SetupQuestionRoutes(rg *gin.RouterGroup) {
	question := rg.Group("/questions")

	protected := question.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.GET("", question_controller.GetQuestions)
		protected.POST("/:id/answer", question_controller.AnswerQuestion)
		protected.POST("/:id/archive", question_controller.ArchiveQuestion)
	}
}
