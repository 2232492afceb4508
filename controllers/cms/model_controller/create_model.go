package model_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// CreateModel godoc
// @Summary Create a product model
// @Description Create a model under a brand. The brand_id is stored as-is; a dangling brand reference is allowed.
// @Tags CMS - Models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param model body models.ProductModelRequest true "Model details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/models [post]
func CreateModel(c *gin.Context) {
	var req models.ProductModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	model := models.ProductModel{
		Name:    req.Name,
		BrandID: req.BrandID,
		Module:  req.Module,
		Active:  active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&model).Error; err != nil {
		log.Printf("[cms.models] failed to create model: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create model"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Model created successfully", model))
}
