package question_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// CreateQuestion godoc
// @Summary Submit a customer question
// @Description Stores a customer question from the storefront, optionally tied to a product, for the back office to answer
// @Tags Store - Questions
// @Accept json
// @Produce json
// @Param question body models.QuestionRequest true "Question details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/questions [post]
func CreateQuestion(c *gin.Context) {
	var req models.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	question := models.Question{
		Module:       req.Module,
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Text:         req.Text,
		Status:       models.QuestionPending,
	}

	if err := config.Gorm.WithContext(ctx).Create(&question).Error; err != nil {
		log.Printf("[store.questions] failed to create question: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit question"))
		return
	}

	log.Printf("[store.questions] question submitted: %s (module=%s)", question.ID, question.Module)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Question submitted successfully", question))
}
