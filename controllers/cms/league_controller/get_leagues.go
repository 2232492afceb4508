package league_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetLeagues godoc
// @Summary List leagues
// @Description Retrieve all leagues, optionally filtered by module
// @Tags CMS - Leagues
// @Produce json
// @Param module query string false "Filter by module" Enums(sports, automotive)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/leagues [get]
func GetLeagues(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.League{})

	if module := c.Query("module"); module != "" {
		if !models.ValidModule(module) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
			return
		}
		query = query.Where("module = ?", module)
	}

	leagues := make([]models.League, 0)
	if err := query.Order("name ASC").Find(&leagues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch leagues"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Leagues fetched successfully", leagues))
}
