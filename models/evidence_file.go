package models

import (
	"time"
)

// EvidenceFile is one uploaded evidence asset attached to a report. Storing
// one row per file keeps the path list intact regardless of what characters
// a path contains.
type EvidenceFile struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	PoliceReportID uint      `gorm:"not null;index" json:"police_report_id"`
	FilePath       string    `gorm:"not null" json:"file_path"`
	OrderIndex     int       `gorm:"default:0" json:"order_index"`
}
