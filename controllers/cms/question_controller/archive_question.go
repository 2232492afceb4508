package question_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// ArchiveQuestion godoc
// @Summary Archive a customer question
// @Description Mark a question as archived without answering it
// @Tags CMS - Questions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/questions/{id}/archive [patch]
func ArchiveQuestion(c *gin.Context) {
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

	if err := config.Gorm.WithContext(ctx).
		Model(&question).
		Update("status", models.QuestionArchived).Error; err != nil {
		log.Printf("[cms.questions] failed to archive %s: %v", question.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to archive question"))
		return
	}

	question.Status = models.QuestionArchived

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Question archived successfully", question))
}
