package models

import "time"

// Shop represents a physical store location. Latitude and longitude are
// pointers so a shop without coordinates persists as NULL, not 0.0.
type Shop struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Address   string    `json:"address" gorm:"not null"`
	Phone     string    `json:"phone"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
