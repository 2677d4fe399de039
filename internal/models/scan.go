package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecord is one persisted risk analysis.
type ScanRecord struct {
	ID        uint       `gorm:"primarykey" json:"-"`
	ScanID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"scan_id"`
	UPIID     *string    `gorm:"size:120;index" json:"upi_id,omitempty"`
	RiskScore int        `gorm:"not null" json:"risk_score"`
	RiskLabel string     `gorm:"size:20;not null" json:"risk_label"`
	Reasons   StringList `gorm:"type:text" json:"reasons"`
	UserID    string     `gorm:"size:120;index" json:"-"`
	Timestamp time.Time  `gorm:"index" json:"timestamp"`
}

// ScanPage is one page of a user's scan history, newest first.
type ScanPage struct {
	Scans []ScanRecord `json:"scans"`
	Total int64        `json:"total"`
}
