package repositories

import (
	"context"

	"cypher/internal/models"
)

// ScanRepository defines the persistence operations for scan history
type ScanRepository interface {
	// Create stores a scan and drops the owner's cached history pages
	Create(ctx context.Context, scan *models.ScanRecord) error

	// ListByUser returns one page of a user's scans, newest first
	ListByUser(ctx context.Context, userID string, limit, offset int) (*models.ScanPage, error)
}

// Implementation will be in scan_repository_impl.go
