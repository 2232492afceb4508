package section_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetSections godoc
// @Summary List home sections
// @Description Retrieve all home sections, optionally filtered by module, in position order
// @Tags CMS - Sections
// @Produce json
// @Param module query string false "Filter by module" Enums(sports, automotive)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/sections [get]
func GetSections(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.HomeSection{})

	if module := c.Query("module"); module != "" {
		if !models.ValidModule(module) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
			return
		}
		query = query.Where("module = ?", module)
	}

	sections := make([]models.HomeSection, 0)
	if err := query.Order("position ASC").Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sections"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sections fetched successfully", sections))
}
