package models

import (
	"time"
)

// Admin is a privileged account. The password is bcrypt-hashed like every
// other credential table.
type Admin struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	FullName    string    `gorm:"size:100;not null" json:"full_name"`
	Email       string    `gorm:"unique;not null" json:"email"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	Address     string    `gorm:"not null" json:"address"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;default:'Admin'" json:"role"`
}
