package models

import "time"

// BlockedTime is an ad-hoc unavailable interval (vacation, break).
// Instants are stored in UTC; conversion to the shop's civil time
// happens only at presentation boundaries.
type BlockedTime struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
