package section_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// UpdateSection godoc
// @Summary Update a home section
// @Description Partially update a home section
// @Tags CMS - Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param section body models.UpdateHomeSectionRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/sections/{id} [patch]
func UpdateSection(c *gin.Context) {
	var req models.UpdateHomeSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var section models.HomeSection
	if err := config.Gorm.WithContext(ctx).
		First(&section, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ProductIDs != nil {
		updates["product_ids"] = models.ProductIDList(*req.ProductIDs)
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&section).
		Updates(updates).Error; err != nil {
		log.Printf("[cms.sections] failed to update %s: %v", section.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update section"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section updated successfully", section))
}
