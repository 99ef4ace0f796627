package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PersonID uint   `gorm:"uniqueIndex;not null" json:"person_id"`
	Person   Person `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"person"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
