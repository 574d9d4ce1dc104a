package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ResourceID uint     `gorm:"not null;index:idx_reservations_resource_date" json:"resource_id"`
	Resource   Resource `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"resource"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	Date time.Time `gorm:"type:date;not null;index:idx_reservations_resource_date" json:"date"`

	TimeStart string `gorm:"size:5;not null" json:"time_start"`
	TimeEnd   string `gorm:"size:5;not null" json:"time_end"`

	// nil enquanto ativa; preenchida uma única vez no cancelamento
	CancelledOn *time.Time `gorm:"type:date" json:"cancelled_on"`
	Note        string     `gorm:"size:500" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
