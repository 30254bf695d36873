package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Specialties StringList `gorm:"type:text" json:"specialties"`

	// Inactive barbers stay bookable by id but disappear from the
	// public listing.
	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
