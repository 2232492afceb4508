package section_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// DeleteSection godoc
// @Summary Delete a home section
// @Description Delete a curated home page section
// @Tags CMS - Sections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/sections/{id} [delete]
func DeleteSection(c *gin.Context) {
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

	if err := config.Gorm.WithContext(ctx).Delete(&section).Error; err != nil {
		log.Printf("[cms.sections] failed to delete %s: %v", section.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete section"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Section deleted successfully", nil))
}
