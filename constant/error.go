package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrValidation
	ErrUsernameExists
	ErrEmailExists
	ErrMobileExists
	ErrDuplicateUser
)

// Top-level response envelope messages
const (
	MessageUserCreated     = "User created successfully"
	MessageValidationError = "Validation error"
	MessageInternalError   = "Internal server error occurred"
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrInvalidRequest: "invalid request",
	ErrValidation:     "validation failed",
	ErrUsernameExists: "Username already exists",
	ErrEmailExists:    "Email already registered",
	ErrMobileExists:   "Mobile number already registered",
	ErrDuplicateUser:  "User with this username, email, or mobile already exists",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusCreated,
	ErrInternal:       http.StatusInternalServerError,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrValidation:     http.StatusBadRequest,
	ErrUsernameExists: http.StatusBadRequest,
	ErrEmailExists:    http.StatusBadRequest,
	ErrMobileExists:   http.StatusBadRequest,
	ErrDuplicateUser:  http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrInvalidRequest: "0002",
	ErrValidation:     "0003",
	ErrUsernameExists: "0004",
	ErrEmailExists:    "0005",
	ErrMobileExists:   "0006",
	ErrDuplicateUser:  "0007",
}
