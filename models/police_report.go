package models

import (
	"time"
)

// Report status values. A report starts "In Progress" and can only move to
// "Solved"; the transition is idempotent.
const (
	StatusInProgress = "In Progress"
	StatusSolved     = "Solved"
)

type PoliceReport struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	UserID        *uint          `gorm:"index" json:"user_id"`
	FullName      string         `gorm:"size:100;not null" json:"full_name"`
	MobileNumber  string         `gorm:"size:20;not null" json:"mobile_number"`
	IncidentType  string         `gorm:"not null" json:"incident_type"`
	Timestamp     time.Time      `json:"timestamp"` // server-assigned at submission
	Description   string         `gorm:"not null" json:"description"`
	Address       string         `gorm:"not null" json:"address"`
	PoliceStation string         `gorm:"not null;index" json:"police_station"`
	Status        string         `gorm:"not null;default:'In Progress'" json:"status"`
	Evidence      []EvidenceFile `gorm:"foreignKey:PoliceReportID" json:"evidence"`
}

// EvidencePaths returns the stored file paths in upload order.
func (r *PoliceReport) EvidencePaths() []string {
	paths := make([]string, 0, len(r.Evidence))
	for _, e := range r.Evidence {
		paths = append(paths, e.FilePath)
	}
	return paths
}
