package model

import "time"

// Room represents a room inside a house.
type Room struct {
	ID        string  `gorm:"primaryKey;size:64"`
	Name      string  `gorm:"size:256;not null"`
	HouseID   string  `gorm:"size:64;index;not null"`
	Floor     int     `gorm:"not null"`
	Width     float64 `gorm:"not null"`
	Height    float64 `gorm:"not null"`
	Length    float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
