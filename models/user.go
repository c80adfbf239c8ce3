package models

import (
	"time"
)

// Account roles as stored in the Role column of each credential table.
const (
	RoleUser       = "Normal User"
	RoleHelpCenter = "Police Station"
	RoleAdmin      = "Admin"
)

type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	FullName    string    `gorm:"size:100;not null" json:"full_name"`
	Email       string    `gorm:"unique;not null" json:"email"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	Address     string    `gorm:"not null" json:"address"`
	Password    string    `gorm:"not null" json:"-"` // Don't expose password in JSON
	Role        string    `gorm:"not null;default:'Normal User'" json:"role"`
}
