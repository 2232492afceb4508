package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/admin_controller"
	admin_auth "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/cms/admin_controller/auth"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/middleware"
)

// SetupAdminRoutes sets up all admin account and activity log routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)
	admin.POST("/accept-invite", admin_auth.AcceptAdminInvite)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Profile
		protected.PATCH("/profile", admin_controller.UpdateAdminProfile)

		// Admins
		protected.GET("/admins", admin_controller.GetAdmins)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)
		protected.GET("/admins/:id/activity-logs", admin_controller.GetAdminActivityLogs)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		superAdmin.POST("/invites", admin_auth.CreateAdminInvite)
	}
}
