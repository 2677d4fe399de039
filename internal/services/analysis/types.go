package analysis

import "time"

const DefaultPersistTimeout = 2 * time.Second

// Config holds analysis service settings
type Config struct {
	// Now supplies the hour used for QR scans that do not state one.
	Now func() time.Time

	// PersistTimeout bounds the history write of a single scan.
	PersistTimeout time.Duration
}
