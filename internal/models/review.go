package models

import "time"

// Review belongs to exactly one User and one Product.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Review    string    `json:"review" gorm:"column:review;not null"`
	Stars     int       `json:"stars" gorm:"not null;check:stars >= 1 AND stars <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

// ReviewWithUser is a review row annotated with the reviewer's display name.
// UserName is nil when the referenced user row no longer exists.
type ReviewWithUser struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Review    string    `json:"review"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
	UserName  *string   `json:"user_name,omitempty"`
}

// ReviewWithProduct is a review row annotated with the reviewed product's name.
type ReviewWithProduct struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ProductID   uint      `json:"product_id"`
	Review      string    `json:"review"`
	Stars       int       `json:"stars"`
	CreatedAt   time.Time `json:"created_at"`
	ProductName *string   `json:"product_name,omitempty"`
}
