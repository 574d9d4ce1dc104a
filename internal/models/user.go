package models

import "time"

// Colaborador: quem faz reservas de recursos.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Registration string `gorm:"size:20" json:"registration"`

	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`

	Role string `gorm:"size:20;default:'collaborator'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
