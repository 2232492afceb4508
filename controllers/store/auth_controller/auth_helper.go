package auth_controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func createOrUpdateUser(googleUser *models.GoogleUserInfo) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User

	result := config.Gorm.WithContext(ctx).
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleUser.Sub,
				Provider:      "google",
				EmailVerified: googleUser.EmailVerified,
				Avatar:        &googleUser.Picture,
			}

			if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": googleUser.EmailVerified,
	}

	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	if user.GoogleID == "" {
		updates["google_id"] = googleUser.Sub
		updates["provider"] = "google"
	}

	if err := config.Gorm.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = googleUser.EmailVerified

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", config.GetFrontendURL(), url.QueryEscape(errorMsg))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
