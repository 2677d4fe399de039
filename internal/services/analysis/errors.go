package analysis

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrHistoryUnavailable = errors.New("scan history is unavailable")
)
