package settings_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetStoreConfig godoc
// @Summary Get store configuration
// @Description Retrieve the store configuration of one module
// @Tags CMS - Settings
// @Produce json
// @Security BearerAuth
// @Param module path string true "Store module" Enums(sports, automotive)
// @Success 200 {object} models.ApiResponse{data=models.StoreConfig}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/config/{module} [get]
func GetStoreConfig(c *gin.Context) {
	module := c.Param("module")
	if !models.ValidModule(module) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cfg models.StoreConfig
	if err := config.Gorm.WithContext(ctx).
		Where("module = ?", module).
		First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Store is not configured"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store config fetched successfully", cfg))
}
