package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/cache"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product. Setting brand_id, model_id or league to an empty string clears the reference.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.League != nil {
		updates["league"] = *req.League
	}
	if req.BrandID != nil {
		updates["brand_id"] = *req.BrandID
	}
	if req.ModelID != nil {
		updates["model_id"] = *req.ModelID
	}
	if req.Automotive != nil {
		updates["automotive"] = *req.Automotive
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Media != nil {
		if req.Media.Primary.URL == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Primary image URL is required"))
			return
		}
		updates["media"] = *req.Media
	}
	if req.Variants != nil {
		updates["variants"] = models.VariantsList(*req.Variants)
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		log.Printf("[cms.products] failed to update %s: %v", product.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	catalog_cache.Invalidate(product.Module)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
