package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent records one customer sign-in with parsed user-agent details.
// Rows are written through raw pgx SQL in utils.LogLoginEvent (the insert is
// on the OAuth callback hot path); this model exists for schema migration
// and reads.
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	LoggedInAt time.Time `json:"logged_in_at" gorm:"not null;index:idx_login_events_date,sort:desc"`
	IPAddress  string    `json:"ip_address" gorm:"column:ip_address"`
	UserAgent  string    `json:"user_agent" gorm:"type:text"`
	DeviceType string    `json:"device_type"` // mobile, tablet, desktop
	Browser    string    `json:"browser"`
	OS         string    `json:"os" gorm:"column:os"`
}

// TableName specifies the table name
func (LoginEvent) TableName() string {
	return "login_events"
}
