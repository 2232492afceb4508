package brand_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetBrands godoc
// @Summary List brands
// @Description Retrieve all brands, optionally filtered by module
// @Tags CMS - Brands
// @Produce json
// @Param module query string false "Filter by module" Enums(sports, automotive)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/brands [get]
func GetBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.Brand{})

	if module := c.Query("module"); module != "" {
		if !models.ValidModule(module) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
			return
		}
		query = query.Where("module = ?", module)
	}

	brands := make([]models.Brand, 0)
	if err := query.Order("name ASC").Find(&brands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
}
