package model_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetModels godoc
// @Summary List product models
// @Description Retrieve all models, optionally filtered by module or brand
// @Tags CMS - Models
// @Produce json
// @Param module query string false "Filter by module" Enums(sports, automotive)
// @Param brand_id query string false "Filter by brand id"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/models [get]
func GetModels(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.ProductModel{})

	if module := c.Query("module"); module != "" {
		if !models.ValidModule(module) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
			return
		}
		query = query.Where("module = ?", module)
	}
	if brandID := c.Query("brand_id"); brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}

	productModels := make([]models.ProductModel, 0)
	if err := query.Order("name ASC").Find(&productModels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch models"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Models fetched successfully", productModels))
}
