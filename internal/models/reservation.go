package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberServiceID uint          `json:"barber_service_id"`
	BarberService   BarberService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber_service"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	// EndTime is frozen at creation from the service duration and is
	// not recomputed if the offering changes later.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status      string     `gorm:"size:20;default:'active'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
