package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the OAuth callback: verifies the state token, exchanges the authorization code, creates or updates the user, issues a JWT cookie and redirects back to the storefront
// @Tags Store - Auth
// @Produce json
// @Success 307 "Redirect to storefront after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google] state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("[auth.google] no authorization code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[auth.google] code exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		log.Printf("[auth.google] failed to get user info: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[auth.google] failed to read response: %v", err)
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("[auth.google] decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	if googleUser.Sub == "" {
		log.Printf("[auth.google] no Google ID in user info")
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	user, err := createOrUpdateUser(&googleUser)
	if err != nil {
		log.Printf("[auth.google] database error: %v", err)
		redirectToFrontendWithError(c, "Database error")
		return
	}

	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("[auth.google] failed to log login event: %v", err)
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.google] JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60,
		"/",
		"",
		isProd,
		true,
	)

	// Temporary cookie with user data for the login popup to read
	userJSON, _ := json.Marshal(user.ToResponse())
	c.SetCookie(
		"user_data",
		string(userJSON),
		60,
		"/",
		"",
		isProd,
		false,
	)

	log.Printf("[auth.google] login successful: %s", user.Email)

	redirectURL := fmt.Sprintf("%s/auth-popup", config.GetFrontendURL())
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
