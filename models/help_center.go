package models

import (
	"time"
)

// HelpCenter is a police station account able to receive and resolve reports.
type HelpCenter struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	FullName    string    `gorm:"size:100;not null" json:"full_name"`
	Address     string    `gorm:"size:100;not null" json:"address"`
	Email       string    `gorm:"unique;not null" json:"email"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;default:'Police Station'" json:"role"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}
