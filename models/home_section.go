package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductIDList is a jsonb-stored ordered list of product ids.
type ProductIDList []uuid.UUID

func (p *ProductIDList) Scan(value interface{}) error {
	if value == nil {
		*p = make(ProductIDList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductIDList")
	}
	return json.Unmarshal(bytes, p)
}

func (p ProductIDList) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(p)
}

// HomeSection is a curated block on the storefront home page: a title plus
// an ordered list of product ids, positioned among the other sections of
// its module.
type HomeSection struct {
	ID         uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string        `json:"title" gorm:"not null"`
	Module     string        `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	ProductIDs ProductIDList `json:"product_ids" gorm:"type:jsonb;not null;default:'[]'"`
	Position   int           `json:"position" gorm:"not null;default:0;index"`
	Active     bool          `json:"active" gorm:"default:true;index"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (h *HomeSection) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (HomeSection) TableName() string {
	return "home_sections"
}

type HomeSectionRequest struct {
	Title      string      `json:"title" binding:"required" example:"Lançamentos"`
	Module     string      `json:"module" binding:"required,oneof=sports automotive"`
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required"`
	Position   int         `json:"position" binding:"min=0"`
	Active     *bool       `json:"active,omitempty"`
}

type UpdateHomeSectionRequest struct {
	Title      *string      `json:"title"`
	ProductIDs *[]uuid.UUID `json:"product_ids"`
	Position   *int         `json:"position" binding:"omitempty,min=0"`
	Active     *bool        `json:"active"`
}

// HomeSectionResponse is the storefront view of a section with its
// product ids resolved to thin product cards, section order preserved.
type HomeSectionResponse struct {
	ID       uuid.UUID                   `json:"id"`
	Title    string                      `json:"title"`
	Position int                         `json:"position"`
	Products []StorefrontProductResponse `json:"products"`
}
