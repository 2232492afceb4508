package section_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// CreateSection godoc
// @Summary Create a home section
// @Description Create a curated home page section with an ordered list of product ids. The ids are stored as-is; missing products are skipped when the storefront renders the section.
// @Tags CMS - Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section body models.HomeSectionRequest true "Section details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/sections [post]
func CreateSection(c *gin.Context) {
	var req models.HomeSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	section := models.HomeSection{
		Title:      req.Title,
		Module:     req.Module,
		ProductIDs: models.ProductIDList(req.ProductIDs),
		Position:   req.Position,
		Active:     active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&section).Error; err != nil {
		log.Printf("[cms.sections] failed to create section: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create section"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Section created successfully", section))
}
