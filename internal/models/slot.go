package models

import "time"

// StaffServiceSlot é a "vaga de atendimento": um funcionário oferecendo
// um ou mais serviços em um horário específico. No máximo uma vaga por
// (funcionário, horário).
type StaffServiceSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID uint  `gorm:"not null;uniqueIndex:idx_staff_time_slot" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"staff"`

	TimeSlotID uint     `gorm:"not null;uniqueIndex:idx_staff_time_slot" json:"time_slot_id"`
	TimeSlot   TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"time_slot"`

	// Serviços oferecidos nesta vaga (combos têm mais de um)
	Services []Service `gorm:"many2many:slot_services;" json:"services"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
