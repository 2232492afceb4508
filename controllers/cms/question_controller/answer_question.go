package question_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// AnswerQuestion godoc
// @Summary Answer a customer question
// @Description Store the answer and mark the question as answered. When the customer contact looks like an email address, a notification is sent.
// @Tags CMS - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param answer body models.AnswerQuestionRequest true "Answer text"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/questions/{id} [patch]
func AnswerQuestion(c *gin.Context) {
	var req models.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var question models.Question
	if err := config.Gorm.WithContext(ctx).
		First(&question, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Question not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	now := time.Now()
	if err := config.Gorm.WithContext(ctx).
		Model(&question).
		Updates(map[string]interface{}{
			"answer":      req.Answer,
			"status":      models.QuestionAnswered,
			"answered_at": now,
		}).Error; err != nil {
		log.Printf("[cms.questions] failed to answer %s: %v", question.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to answer question"))
		return
	}

	question.Answer = req.Answer
	question.Status = models.QuestionAnswered
	question.AnsweredAt = &now

	// Contact is free text; only notify when it looks like an email
	if strings.Contains(question.Contact, "@") {
		go notifyCustomer(question)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Question answered successfully", question))
}

func notifyCustomer(question models.Question) {
	resendClient := services.NewResendClient()
	err := resendClient.SendQuestionAnsweredEmail(services.QuestionAnsweredEmailData{
		CustomerEmail: question.Contact,
		CustomerName:  question.CustomerName,
		QuestionText:  question.Text,
		AnswerText:    question.Answer,
	})
	if err != nil {
		log.Printf("[cms.questions] failed to notify %s: %v", question.Contact, err)
	}
}
