package model

import "time"

// Device represents a device installed in a room.
type Device struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:256;not null"`
	TypeID    string `gorm:"size:64;index;not null"`
	RoomID    string `gorm:"size:64;index;not null"`
	Active    bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
