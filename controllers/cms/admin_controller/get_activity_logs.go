package admin_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func parseLogPagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// GetActivityLogs godoc
// @Summary List activity logs
// @Description Paginated activity log across all admins, newest first. Filterable by action and resource type
// @Tags CMS - Activity Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param action query string false "Filter by action, e.g. created_product"
// @Param resource_type query string false "Filter by resource type, e.g. product"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page, limit := parseLogPagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.ActivityLog{})

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.activity-logs] count failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	var logs []models.ActivityLog
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		log.Printf("[admin.activity-logs] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	responses := make([]models.ActivityLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, logs[i].ToResponse())
	}

	totalPages := (int(total) + limit - 1) / limit
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", responses, meta))
}

// GetAdminActivityLogs godoc
// @Summary List activity logs of a single admin
// @Description Paginated activity log for one admin, newest first
// @Tags CMS - Activity Logs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Failure 400 {object} models.ApiResponse "Invalid admin ID"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/admins/{id}/activity-logs [get]
func GetAdminActivityLogs(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	page, limit := parseLogPagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("admin_id = ?", adminID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.activity-logs] count failed for %s: %v", adminID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	var logs []models.ActivityLog
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		log.Printf("[admin.activity-logs] fetch failed for %s: %v", adminID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	responses := make([]models.ActivityLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, logs[i].ToResponse())
	}

	totalPages := (int(total) + limit - 1) / limit
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", responses, meta))
}
