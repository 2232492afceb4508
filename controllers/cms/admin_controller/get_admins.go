package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// GetAdmins godoc
// @Summary List all admins
// @Description Returns all admin accounts with their computed status
// @Tags CMS - Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.AdminResponse}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/admins [get]
func GetAdmins(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admins []models.Admin
	if err := config.Gorm.WithContext(ctx).
		Order("joined_at ASC").
		Find(&admins).Error; err != nil {
		log.Printf("[admin.list] failed to fetch admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admins"))
		return
	}

	authService := services.GetAdminAuthService()

	responses := make([]models.AdminResponse, 0, len(admins))
	for i := range admins {
		admins[i].Status = authService.GetAdminStatus(admins[i].Status, admins[i].LastLoginAt)
		responses = append(responses, admins[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admins retrieved", responses))
}
