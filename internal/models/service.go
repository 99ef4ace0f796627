package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string          `gorm:"size:100;not null" json:"name"`
	Price           decimal.Decimal `gorm:"type:numeric(7,2);not null" json:"price"`
	DurationMinutes int             `gorm:"default:30" json:"duration_minutes"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
