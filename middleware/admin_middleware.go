package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// AdminAuthMiddleware validates the admin JWT and loads the admin's role
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c, "admin_token")
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// Touch the session so "last active" stays current. A failure here
		// must not block the request.
		sessionService := services.GetAdminSessionService()
		authService := services.GetAdminAuthService()
		tokenHash := authService.HashToken(token)

		if err := sessionService.UpdateSessionActivity(ctx, tokenHash); err != nil {
			log.Printf("[auth] failed to update session activity: %v", err)
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)

		var admin models.Admin
		if err := config.Gorm.WithContext(ctx).
			Select("role").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			log.Printf("[auth] failed to fetch admin role: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			c.Abort()
			return
		}

		c.Set("adminRole", admin.Role)

		c.Next()
	}
}

// RequireSuperAdminMiddleware restricts a route to super admins
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if adminRole != "super_admin" {
			log.Printf("[auth] non-super-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
