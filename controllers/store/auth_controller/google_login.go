package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a cookie, and redirecting to Google's consent page
// @Tags Store - Auth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Router /auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	state := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"oauth_state",
		state,
		3600,
		"/",
		"",
		false,
		true,
	)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)

	log.Printf("[auth.google] redirecting to consent page (state %s)", state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
