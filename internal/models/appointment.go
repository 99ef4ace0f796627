package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Cliente pode ser removido sem perder o histórico do agendamento
	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Uma vaga só pode ser agendada uma vez; é isso que impede o
	// double-booking, inclusive sob concorrência
	SlotID uint             `gorm:"uniqueIndex;not null" json:"slot_id"`
	Slot   StaffServiceSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"slot"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
