package services

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// ActivityLogService handles activity logging
type ActivityLogService struct{}

// NewActivityLogService creates a new activity log service
func NewActivityLogService() *ActivityLogService {
	return &ActivityLogService{}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      uuid.UUID              // Who performed the action
	AdminEmail   string                 // Admin's email
	Action       string                 // ActionCreateProduct, ActionUpdateBrand, etc.
	ResourceType string                 // ResourceTypeProduct, ResourceTypeSection, etc.
	ResourceID   string                 // ID of the resource
	ResourceName string                 // Human readable name (product name, category slug, etc.)
	Changes      map[string]interface{} // {before: {...}, after: {...}}
	Status       string                 // StatusSuccess or StatusFailed
	ErrorMessage string                 // Error details if failed
	Context      *gin.Context           // For IP and User-Agent extraction
}

// LogActivity logs an admin action to the database. Logging failures are
// swallowed: they must never fail the request being logged.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) error {
	if req.AdminID == uuid.Nil {
		log.Printf("[activity-log] warning: AdminID is nil for action %s", req.Action)
		return nil
	}

	ipAddress := ""
	userAgent := ""
	if req.Context != nil {
		ipAddress = req.Context.ClientIP()
		userAgent = req.Context.GetHeader("User-Agent")
	}

	changesJSON := []byte("{}")
	if req.Changes != nil {
		if data, err := json.Marshal(req.Changes); err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
		} else {
			changesJSON = data
		}
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changesJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[activity-log] failed to write log entry: %v", err)
		return err
	}
	return nil
}

// CreateChanges builds the {before, after} changes map; nil objects are
// serialized as empty maps.
func CreateChanges(before, after interface{}) map[string]interface{} {
	return map[string]interface{}{
		"before": toMap(before),
		"after":  toMap(after),
	}
}

func toMap(obj interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	if obj == nil {
		return out
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

// Global instance
var activityLogService *ActivityLogService

// GetActivityLogService returns the global activity log service instance
func GetActivityLogService() *ActivityLogService {
	if activityLogService == nil {
		activityLogService = NewActivityLogService()
	}
	return activityLogService
}

// LogActivity logs an admin action using the global service
func LogActivity(req LogActivityRequest) error {
	return GetActivityLogService().LogActivity(req)
}
