package model

import "time"

// House represents a house with its postal address and coordinates.
type House struct {
	ID         string  `gorm:"primaryKey;size:64"`
	Name       string  `gorm:"size:256;not null"`
	Street     string  `gorm:"size:256;not null"`
	DoorNumber string  `gorm:"size:32;not null"`
	PostalCode string  `gorm:"size:32;not null"`
	City       string  `gorm:"size:128;not null"`
	Country    string  `gorm:"size:128;not null"`
	Latitude   float64 `gorm:"not null"`
	Longitude  float64 `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
