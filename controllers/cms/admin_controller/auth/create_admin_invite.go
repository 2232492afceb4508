package admin_auth_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// CreateAdminInvite godoc
// @Summary Create admin invite (super admin only)
// @Description Generate and email an invite to become an admin
// @Tags CMS - Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inviteRequest body models.CreateAdminInviteRequest true "Email to invite"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or already invited"
// @Failure 403 {object} models.ApiResponse "Super admin access required"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/invites [post]
func CreateAdminInvite(c *gin.Context) {
	// Middleware already checked super_admin, but we double-check
	adminRole, exists := c.Get("adminRole")
	if !exists || adminRole != "super_admin" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Super admin access required"))
		return
	}

	var req models.CreateAdminInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existingAdmin models.Admin
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existingAdmin).Error; err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin with this email already exists"))
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("[admin.invites.create] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	authService := services.GetAdminAuthService()
	token, err := authService.GenerateInviteToken()
	if err != nil {
		log.Printf("[admin.invites.create] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	tokenHash := authService.HashToken(token)
	expiresAt := authService.GetInviteTokenExpiration()

	invite := models.AdminInvite{
		Email:     req.Email,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		Used:      false,
	}

	if err := config.Gorm.WithContext(ctx).Create(&invite).Error; err != nil {
		log.Printf("[admin.invites.create] failed to create invite: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create invite"))
		return
	}

	adminIDRaw, _ := c.Get("adminID")
	adminEmail, _ := c.Get("adminEmail")
	log.Printf("[admin.invites.create] invite created by %s for %s (expires: %v)", adminIDRaw, req.Email, expiresAt)

	// Invite routes sit outside the auto-logging middleware, so log here
	changes := map[string]interface{}{
		"email":      req.Email,
		"expires_at": expiresAt,
	}
	changesJSON, _ := json.Marshal(changes)

	adminID, _ := uuid.Parse(adminIDRaw.(string))
	activityLog := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		AdminID:      adminID,
		AdminEmail:   adminEmail.(string),
		Action:       models.ActionCreateAdminInvite,
		ResourceType: models.ResourceTypeAdminInvite,
		ResourceID:   invite.ID.String(),
		ResourceName: req.Email,
		Changes:      datatypes.JSON(changesJSON),
		Status:       models.StatusSuccess,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}

	if err := config.Gorm.WithContext(ctx).Create(&activityLog).Error; err != nil {
		log.Printf("[admin.invites.create] failed to log activity: %v", err)
	}

	go sendAdminInviteEmail(req.Email, token)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Invite created and email sent", map[string]interface{}{
		"email":   req.Email,
		"expires": expiresAt,
	}))
}

// sendAdminInviteEmail sends the invitation email (async)
func sendAdminInviteEmail(email string, token string) {
	resendClient := services.NewResendClient()
	frontendURL := os.Getenv("ADMIN_FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3001"
	}

	inviteLink := frontendURL + "/accept-invite?email=" + email + "&token=" + token

	emailData := services.AdminInviteEmailData{
		AdminEmail: email,
		InviteLink: inviteLink,
	}

	if err := resendClient.SendAdminInviteEmail(emailData); err != nil {
		// Invite is already created; the link can be resent manually
		log.Printf("[admin.invites.create] failed to send email to %s: %v", email, err)
	} else {
		log.Printf("[admin.invites.create] invitation email sent to %s", email)
	}
}
