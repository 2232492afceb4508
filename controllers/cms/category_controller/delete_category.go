package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/cache"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category. Subcategories of a deleted parent are detached, not removed. Products keep their (now dangling) category slug and simply stop matching.
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.Gorm.WithContext(ctx).
		First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	tx := config.Gorm.WithContext(ctx).Begin()

	// Detach children so they survive as top-level categories
	if err := tx.Model(&models.Category{}).
		Where("parent_id = ?", category.ID).
		Update("parent_id", nil).Error; err != nil {
		tx.Rollback()
		log.Printf("[cms.categories] failed to detach children of %s: %v", category.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	if err := tx.Delete(&category).Error; err != nil {
		tx.Rollback()
		log.Printf("[cms.categories] failed to delete %s: %v", category.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[cms.categories] commit failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	catalog_cache.Invalidate(category.Module)
	log.Printf("[cms.categories] deleted: %s (%s)", category.Slug, category.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
