package models

import "time"

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PersonID uint   `gorm:"uniqueIndex;not null" json:"person_id"`
	Person   Person `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"person"`

	// Serviços que o funcionário está habilitado a executar
	Services []Service `gorm:"many2many:staff_services;" json:"services"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }
