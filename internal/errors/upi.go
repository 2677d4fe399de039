package errors

var (
	ErrMissingPayeeAddress = &DomainError{
		Code:    "MISSING_PAYEE_ADDRESS",
		Message: "UPI payload has no payee address (pa)",
	}
	ErrInvalidPayeeAddress = &DomainError{
		Code:    "INVALID_PAYEE_ADDRESS",
		Message: "Invalid UPI ID format - must contain @",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "Invalid amount - must be a positive number",
	}
	ErrMalformedUPI = &DomainError{
		Code:    "MALFORMED_UPI",
		Message: "UPI payload could not be parsed",
	}
)
