package league_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// CreateLeague godoc
// @Summary Create a league
// @Description Create a league reference entity, used by the sports module
// @Tags CMS - Leagues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param league body models.LeagueRequest true "League details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/leagues [post]
func CreateLeague(c *gin.Context) {
	var req models.LeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	league := models.League{
		Name:   req.Name,
		Module: req.Module,
		Active: active,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&league).Error; err != nil {
		log.Printf("[cms.leagues] failed to create league: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create league"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "League created successfully", league))
}
