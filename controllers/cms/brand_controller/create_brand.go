package brand_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// CreateBrand godoc
// @Summary Create a brand
// @Description Create a brand reference entity. Products point at it by id; nothing enforces that the reference resolves.
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body models.BrandRequest true "Brand details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/brands [post]
func CreateBrand(c *gin.Context) {
	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	brand := models.Brand{
		Name:    req.Name,
		Module:  req.Module,
		LogoURL: req.LogoURL,
		Active:  active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&brand).Error; err != nil {
		log.Printf("[cms.brands] failed to create brand: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create brand"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Brand created successfully", brand))
}
