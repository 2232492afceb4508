package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetCategories godoc
// @Summary List categories
// @Description Retrieve all categories, optionally filtered by module, with children preloaded on top-level entries
// @Tags CMS - Categories
// @Produce json
// @Param module query string false "Filter by module" Enums(sports, automotive)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.Category{})

	if module := c.Query("module"); module != "" {
		if !models.ValidModule(module) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
			return
		}
		query = query.Where("module = ?", module)
	}

	categories := make([]models.Category, 0)
	if err := query.
		Where("parent_id IS NULL").
		Preload("Children").
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
