package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is an admin-managed reference entity. Products point at it through
// the bare BrandID string; nothing validates that the reference resolves.
type Brand struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Module    string    `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	LogoURL   string    `json:"logo_url,omitempty" gorm:"type:text"`
	Active    bool      `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Brand) TableName() string {
	return "brands"
}

// ProductModel is a model under a brand (e.g. a boot line or a vehicle
// model). Referenced from products by the bare ModelID string.
type ProductModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	BrandID   string    `json:"brand_id" gorm:"not null;index"`
	Module    string    `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	Active    bool      `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (m *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductModel) TableName() string {
	return "product_models"
}

// Request models

type BrandRequest struct {
	Name    string `json:"name" binding:"required" example:"Nike"`
	Module  string `json:"module" binding:"required,oneof=sports automotive"`
	LogoURL string `json:"logo_url,omitempty"`
	Active  *bool  `json:"active,omitempty"`
}

type UpdateBrandRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
	Active  *bool   `json:"active"`
}

type ProductModelRequest struct {
	Name    string `json:"name" binding:"required" example:"Mercurial"`
	BrandID string `json:"brand_id" binding:"required"`
	Module  string `json:"module" binding:"required,oneof=sports automotive"`
	Active  *bool  `json:"active,omitempty"`
}

type UpdateProductModelRequest struct {
	Name    *string `json:"name"`
	BrandID *string `json:"brand_id"`
	Active  *bool   `json:"active"`
}
