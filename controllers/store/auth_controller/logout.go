package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout user
// @Description Logs out the authenticated customer by clearing the auth_token and user_data cookies
// @Tags Store - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"

	// Cookie attributes must match how they were set
	c.SetCookie(
		"auth_token",
		"",
		-1,
		"/",
		"",
		isProd,
		true,
	)

	c.SetCookie(
		"user_data",
		"",
		-1,
		"/",
		"",
		isProd,
		false,
	)

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
