package model_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// DeleteModel godoc
// @Summary Delete a product model
// @Description Delete a model. Products holding its id keep the dangling reference.
// @Tags CMS - Models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/models/{id} [delete]
func DeleteModel(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var model models.ProductModel
	if err := config.Gorm.WithContext(ctx).
		First(&model, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Model not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&model).Error; err != nil {
		log.Printf("[cms.models] failed to delete %s: %v", model.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete model"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Model deleted successfully", nil))
}
