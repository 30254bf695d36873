package models

import "time"

// Location is the address snapshot captured at booking time. It is
// independent of any Salon record and may diverge from it later.
type Location struct {
	ID      string `gorm:"size:100" json:"id"`
	Name    string `gorm:"size:100" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	MapURL  string `gorm:"size:255" json:"mapUrl"`
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Owner of the record. Set once at creation, never updated.
	UserID uint  `gorm:"not null" json:"userId"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	// Catalog references are optional and never validated at write
	// time. A deleted catalog record leaves the id dangling and the
	// preloaded object null; display falls back to the snapshots below.
	SalonID *uint  `json:"salonId"`
	Salon   *Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon,omitempty"`

	BarberID *uint   `json:"barberId"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	ServiceID *uint    `json:"serviceId"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	ServiceName string `gorm:"size:100;not null" json:"serviceName"`

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	Date time.Time `gorm:"not null" json:"date"`
	// Free-form label like "10:00 AM". No timezone or duration semantics.
	Time string `gorm:"size:20;not null" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Price snapshot at creation time, not recomputed if the Service
	// price changes.
	Price float64 `json:"price"`
	Notes string  `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
