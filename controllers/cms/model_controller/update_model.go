package model_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// UpdateModel godoc
// @Summary Update a product model
// @Description Partially update a model
// @Tags CMS - Models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Param model body models.UpdateProductModelRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/models/{id} [patch]
func UpdateModel(c *gin.Context) {
	var req models.UpdateProductModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var model models.ProductModel
	if err := config.Gorm.WithContext(ctx).
		First(&model, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Model not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.BrandID != nil {
		updates["brand_id"] = *req.BrandID
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&model).
		Updates(updates).Error; err != nil {
		log.Printf("[cms.models] failed to update %s: %v", model.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update model"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Model updated successfully", model))
}
