package models

import (
	"strings"
	"time"
)

// Pessoa é o registro base: vira Cliente ou Funcionário depois
type Person struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName  string     `gorm:"size:255;not null" json:"full_name"`
	BirthDate *time.Time `json:"birth_date"`
	CPF       string     `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Mobile    string     `gorm:"size:15" json:"mobile"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string { return "people" }

// DisplayName retorna primeiro e último nome
func (p Person) DisplayName() string {
	parts := strings.Fields(p.FullName)
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + " " + parts[len(parts)-1]
}
