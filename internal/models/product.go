package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url" gorm:"column:image_url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}
