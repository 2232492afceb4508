package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store modules (tenant partitions). Every catalog entity belongs to
// exactly one module.
const (
	ModuleSports     = "sports"
	ModuleAutomotive = "automotive"
)

// ValidModule reports whether m names a known store module.
func ValidModule(m string) bool {
	return m == ModuleSports || m == ModuleAutomotive
}

// Category represents a catalog category. The slug is the stable public
// identifier used by storefront URLs and stored (denormalized) on products.
// ParentID gives one level of hierarchy; the storefront only ever expands
// direct children of a selected category.
type Category struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Slug      string     `json:"slug" gorm:"uniqueIndex;not null"`
	Name      string     `json:"name" gorm:"not null"`
	Module    string     `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	ParentID  *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	Active    bool       `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships (GORM will handle these automatically)
	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating a category or subcategory
type CategoryRequest struct {
	Slug     string     `json:"slug" binding:"required" example:"chuteiras"`
	Name     string     `json:"name" binding:"required" example:"Chuteiras"`
	Module   string     `json:"module" binding:"required,oneof=sports automotive" example:"sports"`
	ParentID *uuid.UUID `json:"parent_id,omitempty" example:"null"`
	Active   *bool      `json:"active,omitempty"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Slug     *string    `json:"slug"`
	Name     *string    `json:"name"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	Active   *bool      `json:"active,omitempty"`
}
