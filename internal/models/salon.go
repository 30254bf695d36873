package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Address     string  `gorm:"size:255" json:"address"`
	City        string  `gorm:"size:100" json:"city"`
	Phone       string  `gorm:"size:20" json:"phone"`
	Email       string  `gorm:"size:100" json:"email"`
	Image       string  `gorm:"size:255" json:"image"`
	Rating      float64 `gorm:"default:0" json:"rating"`

	// Display-only list of service names offered at this location.
	Services StringList `gorm:"type:text" json:"services"`

	// Weekday -> opening hours label, e.g. "mon": "09:00-18:00".
	OpeningHours StringMap `gorm:"type:text" json:"openingHours"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
