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

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category or subcategory. A subcategory carries the parent's id; only one level of nesting is supported.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Duplicate slug"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Parents must exist, belong to the same module and be top-level
	if req.ParentID != nil {
		var parent models.Category
		if err := config.Gorm.WithContext(ctx).
			First(&parent, "id = ?", req.ParentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category not found"))
			} else {
				log.Printf("[cms.categories] database error: %v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
		if parent.Module != req.Module {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category belongs to another module"))
			return
		}
		if parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Categories nest only one level deep"))
			return
		}
	}

	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", req.Slug).
		Count(&count).Error; err != nil {
		log.Printf("[cms.categories] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	category := models.Category{
		Slug:     req.Slug,
		Name:     req.Name,
		Module:   req.Module,
		ParentID: req.ParentID,
		Active:   active,
	}

	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[cms.categories] failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category: "+err.Error()))
		return
	}

	catalog_cache.Invalidate(category.Module)
	log.Printf("[cms.categories] created: %s (%s)", category.Slug, category.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
