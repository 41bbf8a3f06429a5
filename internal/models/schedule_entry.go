package models

import "time"

// ScheduleEntry is one recurring open window for a barber. A barber may
// have several entries on the same weekday (split shifts); the whole
// day set is replaced wholesale on update, never patched.
type ScheduleEntry struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Weekday int `json:"weekday"` // time.Weekday: Sunday = 0

	StartTime string `gorm:"size:5" json:"start_time"` // "HH:mm"
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
