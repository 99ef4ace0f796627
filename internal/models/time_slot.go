package models

import "time"

// TimeSlot é um instante agendável da grade de meia em meia hora
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartsAt time.Time `gorm:"index;not null" json:"starts_at"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
