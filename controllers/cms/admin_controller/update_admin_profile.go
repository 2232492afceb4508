package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// UpdateAdminProfile godoc
// @Summary Update own admin profile
// @Description Update the logged-in admin's name and/or avatar
// @Tags CMS - Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileRequest body models.UpdateAdminProfileRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/profile [patch]
func UpdateAdminProfile(c *gin.Context) {
	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	adminID, err := uuid.Parse(adminIDRaw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	var req models.UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	if req.Name == nil && req.Avatar == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", adminID).
		First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.profile.update] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	before := map[string]interface{}{
		"name":   admin.Name,
		"avatar": admin.Avatar,
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&admin).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.profile.update] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	after := map[string]interface{}{
		"name":   admin.Name,
		"avatar": admin.Avatar,
	}

	if err := services.LogActivity(services.LogActivityRequest{
		AdminID:      admin.ID,
		AdminEmail:   admin.Email,
		Action:       models.ActionUpdateAdminProfile,
		ResourceType: models.ResourceTypeAdmin,
		ResourceID:   admin.ID.String(),
		ResourceName: admin.Email,
		Changes:      map[string]interface{}{"before": before, "after": after},
		Status:       models.StatusSuccess,
		Context:      c,
	}); err != nil {
		log.Printf("[admin.profile.update] failed to log activity: %v", err)
	}

	authService := services.GetAdminAuthService()
	admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated", admin.ToResponse()))
}
