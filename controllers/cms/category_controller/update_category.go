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

// UpdateCategory godoc
// @Summary Update a category
// @Description Partially update a category. Changing the slug does not rewrite products that reference the old slug.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

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

	updates := make(map[string]interface{})
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ParentID != nil {
		var parent models.Category
		if err := config.Gorm.WithContext(ctx).
			First(&parent, "id = ?", req.ParentID).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category not found"))
			return
		}
		if parent.Module != category.Module {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category belongs to another module"))
			return
		}
		if parent.ParentID != nil || parent.ID == category.ID {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid parent category"))
			return
		}
		updates["parent_id"] = *req.ParentID
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&category).
		Updates(updates).Error; err != nil {
		log.Printf("[cms.categories] failed to update %s: %v", category.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	catalog_cache.Invalidate(category.Module)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
