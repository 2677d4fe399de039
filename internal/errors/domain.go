// Package errors holds the coded errors returned to API clients.
package errors

// DomainError is a client-facing failure with a stable machine-readable code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *DomainError) Error() string {
	return e.Message
}
