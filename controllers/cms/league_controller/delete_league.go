package league_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// DeleteLeague godoc
// @Summary Delete a league
// @Description Delete a league. Products holding its id keep the dangling reference.
// @Tags CMS - Leagues
// @Produce json
// @Security BearerAuth
// @Param id path string true "League ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/leagues/{id} [delete]
func DeleteLeague(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var league models.League
	if err := config.Gorm.WithContext(ctx).
		First(&league, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "League not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&league).Error; err != nil {
		log.Printf("[cms.leagues] failed to delete %s: %v", league.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete league"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "League deleted successfully", nil))
}
