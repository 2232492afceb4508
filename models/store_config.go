package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BannerList is a jsonb-stored ordered list of banner images.
type BannerList []MediaURL

func (b *BannerList) Scan(value interface{}) error {
	if value == nil {
		*b = make(BannerList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan BannerList")
	}
	return json.Unmarshal(bytes, b)
}

func (b BannerList) Value() (driver.Value, error) {
	if b == nil {
		return json.Marshal([]MediaURL{})
	}
	return json.Marshal(b)
}

// StoreConfig is the per-module store configuration. One row per module.
// WhatsAppNumber is the checkout hand-off destination.
type StoreConfig struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Module         string     `json:"module" gorm:"type:varchar(20);not null;uniqueIndex;check:module IN ('sports', 'automotive')"`
	StoreName      string     `json:"store_name" gorm:"not null"`
	WhatsAppNumber string     `json:"whatsapp_number" gorm:"not null"`
	Announcement   string     `json:"announcement,omitempty" gorm:"type:text"`
	Banners        BannerList `json:"banners" gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *StoreConfig) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (StoreConfig) TableName() string {
	return "store_configs"
}

type UpdateStoreConfigRequest struct {
	StoreName      *string     `json:"store_name"`
	WhatsAppNumber *string     `json:"whatsapp_number"`
	Announcement   *string     `json:"announcement"`
	Banners        *[]MediaURL `json:"banners"`
}
