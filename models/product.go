package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary" binding:"required"`
	Other   []MediaURL `json:"other,omitempty"`
}

// ProductVariant is one sellable size of a product with its stock level.
type ProductVariant struct {
	Size  string `json:"size" binding:"required" example:"42"`
	Stock int    `json:"stock" binding:"min=0" example:"10"`
}

// AutomotiveFields carries free-text brand/model used by automotive
// products that have no BrandID/ModelID reference. They are compared by
// equality only, never dereferenced.
type AutomotiveFields struct {
	Brand string `json:"brand,omitempty" example:"Bosch"`
	Model string `json:"model,omitempty" example:"Gol G5"`
}

type VariantsList []ProductVariant

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is a catalog product. Category stores a category SLUG, and
// BrandID/ModelID/League are bare string identifiers — weak references
// matched by equality with no foreign-key enforcement. A dangling
// reference silently matches nothing.
type Product struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string           `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string           `json:"name" gorm:"not null;index"`
	Description string           `json:"description" gorm:"not null"`
	Category    string           `json:"category" gorm:"not null;index"`
	League      string           `json:"league,omitempty" gorm:"index"`
	BrandID     string           `json:"brand_id,omitempty" gorm:"index"`
	ModelID     string           `json:"model_id,omitempty" gorm:"index"`
	Automotive  AutomotiveFields `json:"automotive_fields" gorm:"type:jsonb;not null;default:'{}'"`
	Price       float64          `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Media       ProductMedia     `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Variants    VariantsList     `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Module      string           `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	Active      bool             `json:"active" gorm:"default:true;index"`
	Views       int              `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock reports whether any variant has stock left.
func (p *Product) InStock() bool {
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Slug        string           `json:"slug" binding:"required" example:"chuteira-predator-24"`
	Name        string           `json:"name" binding:"required" example:"Chuteira Predator 24"`
	Description string           `json:"description" binding:"required" example:"Chuteira de campo profissional"`
	Category    string           `json:"category" binding:"required" example:"chuteiras"`
	League      string           `json:"league,omitempty" example:"brasileirao"`
	BrandID     string           `json:"brand_id,omitempty"`
	ModelID     string           `json:"model_id,omitempty"`
	Automotive  AutomotiveFields `json:"automotive_fields,omitempty"`
	Price       float64          `json:"price" binding:"required,min=0" example:"499.90"`
	Media       ProductMedia     `json:"media" binding:"required"`
	Variants    []ProductVariant `json:"variants" binding:"required,dive"`
	Module      string           `json:"module" binding:"required,oneof=sports automotive"`
	Active      *bool            `json:"active,omitempty"`
}

type UpdateProductRequest struct {
	Slug        *string           `json:"slug"`
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Category    *string           `json:"category"`
	League      *string           `json:"league"`
	BrandID     *string           `json:"brand_id"`
	ModelID     *string           `json:"model_id"`
	Automotive  *AutomotiveFields `json:"automotive_fields"`
	Price       *float64          `json:"price" binding:"omitempty,min=0"`
	Media       *ProductMedia     `json:"media"`
	Variants    *[]ProductVariant `json:"variants" binding:"omitempty,dive"`
	Active      *bool             `json:"active"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// VariantsList methods
func (v *VariantsList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantsList")
	}
	return json.Unmarshal(bytes, v)
}

func (v VariantsList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]ProductVariant{})
	}
	return json.Marshal(v)
}

// AutomotiveFields methods
func (a *AutomotiveFields) Scan(value interface{}) error {
	if value == nil {
		*a = AutomotiveFields{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AutomotiveFields")
	}
	return json.Unmarshal(bytes, a)
}

func (a AutomotiveFields) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// ProductMedia methods
func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
