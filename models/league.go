package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// League is an admin-managed reference entity for sports products
// (e.g. brasileirao, premier-league). Products carry its ID as a bare
// string; only equality matching happens against it.
type League struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Module    string    `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	Active    bool      `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (l *League) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (League) TableName() string {
	return "leagues"
}

type LeagueRequest struct {
	Name   string `json:"name" binding:"required" example:"Brasileirão"`
	Module string `json:"module" binding:"required,oneof=sports automotive"`
	Active *bool  `json:"active,omitempty"`
}

type UpdateLeagueRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}
