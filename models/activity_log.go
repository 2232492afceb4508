package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents an admin action log entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"` // created_product, updated_brand, etc.
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"`
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"` // Human readable: product name, category slug, etc.
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityChanges represents the before/after changes
type ActivityChanges struct {
	Before map[string]interface{} `json:"before"`
	After  map[string]interface{} `json:"after"`
}

// ActivityLogResponse is the response for activity log data
type ActivityLogResponse struct {
	ID           uuid.UUID              `json:"id"`
	AdminID      uuid.UUID              `json:"admin_id"`
	AdminEmail   string                 `json:"admin_email"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	ResourceName string                 `json:"resource_name"`
	Changes      map[string]interface{} `json:"changes"`
	Status       string                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	IPAddress    string                 `json:"ip_address"`
	UserAgent    string                 `json:"user_agent"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ToResponse converts ActivityLog to ActivityLogResponse
func (al *ActivityLog) ToResponse() ActivityLogResponse {
	changes := make(map[string]interface{})
	if al.Changes != nil {
		_ = json.Unmarshal(al.Changes, &changes)
	}

	return ActivityLogResponse{
		ID:           al.ID,
		AdminID:      al.AdminID,
		AdminEmail:   al.AdminEmail,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Changes:      changes,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		UserAgent:    al.UserAgent,
		CreatedAt:    al.CreatedAt,
	}
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	// Catalog actions
	ActionCreateProduct  = "created_product"
	ActionUpdateProduct  = "updated_product"
	ActionDeleteProduct  = "deleted_product"
	ActionCreateCategory = "created_category"
	ActionUpdateCategory = "updated_category"
	ActionDeleteCategory = "deleted_category"
	ActionCreateBrand    = "created_brand"
	ActionUpdateBrand    = "updated_brand"
	ActionDeleteBrand    = "deleted_brand"
	ActionCreateModel    = "created_model"
	ActionUpdateModel    = "updated_model"
	ActionDeleteModel    = "deleted_model"
	ActionCreateLeague   = "created_league"
	ActionUpdateLeague   = "updated_league"
	ActionDeleteLeague   = "deleted_league"

	// Storefront content actions
	ActionCreateSection     = "created_section"
	ActionUpdateSection     = "updated_section"
	ActionDeleteSection     = "deleted_section"
	ActionUpdateStoreConfig = "updated_store_config"
	ActionAnswerQuestion    = "answered_question"
	ActionArchiveQuestion   = "archived_question"

	// Admin actions
	ActionCreateAdminInvite  = "created_admin_invite"
	ActionAcceptAdminInvite  = "accepted_admin_invite"
	ActionUpdateAdminProfile = "updated_admin_profile"

	// Resource Types
	ResourceTypeProduct     = "product"
	ResourceTypeCategory    = "category"
	ResourceTypeBrand       = "brand"
	ResourceTypeModel       = "model"
	ResourceTypeLeague      = "league"
	ResourceTypeSection     = "section"
	ResourceTypeStoreConfig = "store_config"
	ResourceTypeQuestion    = "question"
	ResourceTypeAdmin       = "admin"
	ResourceTypeAdminInvite = "admin_invite"

	// Status
	StatusSuccess = "success"
	StatusFailed  = "failed"
)
