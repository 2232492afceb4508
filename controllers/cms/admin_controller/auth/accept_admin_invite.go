package admin_auth_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// AcceptAdminInvite godoc
// @Summary Accept admin invitation
// @Description Accept an invite, create the admin account with a password, log them in and return the profile
// @Tags CMS - Auth
// @Accept json
// @Produce json
// @Param request body models.AcceptInviteRequest true "Accept invite request"
// @Success 201 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request or invalid token"
// @Failure 404 {object} models.ApiResponse "Invitation not found or expired"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/accept-invite [post]
func AcceptAdminInvite(c *gin.Context) {
	var req models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.accept-invite] validation failed: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password must be at least 8 characters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Most recent unused invite for this email wins
	var invite models.AdminInvite
	if err := config.Gorm.WithContext(ctx).
		Where("email = ? AND used = ?", req.Email, false).
		Order("created_at DESC").
		First(&invite).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[admin.accept-invite] invite not found for %s", req.Email)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Invitation not found or already used"))
			return
		}
		log.Printf("[admin.accept-invite] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	tokenHash := authService.HashToken(req.Token)
	if tokenHash != invite.TokenHash {
		log.Printf("[admin.accept-invite] invalid token for %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid or expired invitation token"))
		return
	}

	if authService.IsInviteExpired(invite.ExpiresAt) {
		log.Printf("[admin.accept-invite] token expired for %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invitation has expired"))
		return
	}

	var existingAdmin models.Admin
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existingAdmin).Error; err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin account already exists"))
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("[admin.accept-invite] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[admin.accept-invite] password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	admin := &models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         "admin", // Invites never create super admins
		Status:       "active",
	}

	tx := config.Gorm.WithContext(ctx).Begin()

	if err := tx.Create(admin).Error; err != nil {
		tx.Rollback()
		log.Printf("[admin.accept-invite] failed to create admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin account"))
		return
	}

	if err := tx.Model(&invite).Updates(map[string]interface{}{
		"used":    true,
		"used_at": time.Now(),
	}).Error; err != nil {
		tx.Rollback()
		log.Printf("[admin.accept-invite] failed to mark invite as used: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to complete invitation"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[admin.accept-invite] transaction commit failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	now := time.Now()
	if err := config.Gorm.WithContext(ctx).
		Model(admin).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[admin.accept-invite] failed to update last login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	admin.LastLoginAt = &now
	admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[admin.accept-invite] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	sessionService := services.GetAdminSessionService()
	if _, err := sessionService.CreateSession(
		ctx,
		admin.ID,
		token,
		c.ClientIP(),
		c.Request.UserAgent(),
	); err != nil {
		log.Printf("[admin.accept-invite] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)

	log.Printf("[admin.accept-invite] admin account created: %s (%s)", admin.ID, admin.Email)

	changes := map[string]interface{}{
		"email":       admin.Email,
		"name":        admin.Name,
		"role":        admin.Role,
		"status":      admin.Status,
		"created_at":  admin.JoinedAt,
		"invite_used": true,
	}
	changesJSON, _ := json.Marshal(changes)

	activityLog := models.ActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		AdminID:      admin.ID,
		AdminEmail:   admin.Email,
		Action:       models.ActionAcceptAdminInvite,
		ResourceType: models.ResourceTypeAdminInvite,
		ResourceID:   invite.ID.String(),
		ResourceName: admin.Email,
		Changes:      datatypes.JSON(changesJSON),
		Status:       models.StatusSuccess,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
	}

	if err := config.Gorm.WithContext(ctx).Create(&activityLog).Error; err != nil {
		log.Printf("[admin.accept-invite] failed to log activity: %v", err)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Admin account created successfully", admin.ToResponse()))
}
