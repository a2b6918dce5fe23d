package models

import "time"

// User represents a registered customer of the store.
// The persisted schema keeps only created_at, so gorm.Model is not embedded.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `json:"-" gorm:"not null;type:varchar(255)"` // Never serialized
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
