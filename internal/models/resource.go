package models

import "time"

// Resource é um ativo reservável (sala, equipamento) com uma janela de
// funcionamento: intervalo de datas, horário do dia e dias da semana.
type Resource struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string `gorm:"size:255;not null" json:"description"`
	Category    string `gorm:"size:50;not null" json:"category"`

	DateFrom time.Time `gorm:"type:date;not null" json:"date_from"`
	DateTo   time.Time `gorm:"type:date;not null" json:"date_to"`

	// "15:04", limite inclusivo-exclusivo
	TimeFrom string `gorm:"size:5;not null" json:"time_from"`
	TimeTo   string `gorm:"size:5;not null" json:"time_to"`

	// lista separada por vírgula; vazio = todos os dias liberados
	Weekdays string `gorm:"size:100" json:"weekdays"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
