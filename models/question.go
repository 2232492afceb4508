package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question statuses
const (
	QuestionPending  = "pending"
	QuestionAnswered = "answered"
	QuestionArchived = "archived"
)

// Question is a customer question submitted from the storefront, usually
// about a specific product, answered later through the back office.
type Question struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Module       string     `json:"module" gorm:"type:varchar(20);not null;index;check:module IN ('sports', 'automotive')"`
	ProductID    *uuid.UUID `json:"product_id,omitempty" gorm:"type:uuid;index"`
	CustomerName string     `json:"customer_name" gorm:"not null"`
	Contact      string     `json:"contact" gorm:"not null"`
	Text         string     `json:"text" gorm:"type:text;not null"`
	Answer       string     `json:"answer,omitempty" gorm:"type:text"`
	Status       string     `json:"status" gorm:"not null;index;check:status IN ('pending', 'answered', 'archived')"`
	AnsweredAt   *time.Time `json:"answered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.Must(uuid.NewV7())
	}
	if q.Status == "" {
		q.Status = QuestionPending
	}
	return nil
}

func (Question) TableName() string {
	return "questions"
}

type QuestionRequest struct {
	Module       string     `json:"module" binding:"required,oneof=sports automotive"`
	ProductID    *uuid.UUID `json:"product_id,omitempty"`
	CustomerName string     `json:"customer_name" binding:"required,min=2"`
	Contact      string     `json:"contact" binding:"required,min=5"`
	Text         string     `json:"text" binding:"required,min=5"`
}

type AnswerQuestionRequest struct {
	Answer string `json:"answer" binding:"required,min=1"`
}
