package league_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// UpdateLeague godoc
// @Summary Update a league
// @Description Partially update a league
// @Tags CMS - Leagues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "League ID"
// @Param league body models.UpdateLeagueRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/leagues/{id} [patch]
func UpdateLeague(c *gin.Context) {
	var req models.UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

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

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&league).
		Updates(updates).Error; err != nil {
		log.Printf("[cms.leagues] failed to update %s: %v", league.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update league"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "League updated successfully", league))
}
