package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and deactivate the session
// @Tags CMS - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	adminIDRaw, exists := c.Get("adminID")
	if exists {
		log.Printf("[admin.logout] admin logging out: %s", adminIDRaw)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		adminID, err := uuid.Parse(adminIDRaw.(string))
		if err == nil {
			sessionService := services.GetAdminSessionService()
			if err := sessionService.DeactivateSession(ctx, adminID); err != nil {
				// Logout still succeeds
				log.Printf("[admin.logout] failed to deactivate session: %v", err)
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
