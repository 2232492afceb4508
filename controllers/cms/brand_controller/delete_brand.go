package brand_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// DeleteBrand godoc
// @Summary Delete a brand
// @Description Delete a brand. Products holding its id keep the dangling reference and silently stop matching the brand filter.
// @Tags CMS - Brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/brands/{id} [delete]
func DeleteBrand(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brand models.Brand
	if err := config.Gorm.WithContext(ctx).
		First(&brand, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Brand not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&brand).Error; err != nil {
		log.Printf("[cms.brands] failed to delete %s: %v", brand.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete brand"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand deleted successfully", nil))
}
