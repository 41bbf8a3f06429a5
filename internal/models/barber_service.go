package models

import "time"

type BarberService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Price       float64 `json:"price"`
	DurationMin int     `gorm:"default:30" json:"duration_min"`

	// No gorm default here: a default tag makes GORM drop the zero
	// value from the INSERT, silently turning Active=false into true.
	// The handlers set the flag explicitly.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
