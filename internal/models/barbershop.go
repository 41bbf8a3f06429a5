package models

import "time"

type BarberShop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Street  string `gorm:"size:100" json:"street"`
	Number  string `gorm:"size:20" json:"number"`
	Region  string `gorm:"size:100" json:"region"`
	Commune string `gorm:"size:100" json:"commune"`
	Phone   string `gorm:"size:20" json:"phone"`

	// IANA zone used to interpret schedules and render email times.
	Timezone string `gorm:"size:50" json:"timezone"`

	// Optional booking deposit in CLP. Zero disables payment links.
	DepositAmount float64 `gorm:"default:0" json:"deposit_amount"`

	LogoURL string `gorm:"size:255" json:"logo_url"`

	AdminUserID uint `json:"admin_user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
