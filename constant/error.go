package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrInvalidValue
	ErrDuplicateIdentifier
	ErrInvalidSpecializationChange
	ErrInsufficientStock
	ErrInsufficientOfferStock
	ErrDuplicateOffer
	ErrInvalidTransition
	ErrPaymentIncomplete
	ErrUnknownPaymentMethod
	ErrConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                     "success",
	ErrInternal:                    "error internal",
	ErrNotFound:                    "data not found",
	ErrInvalidRequest:              "invalid request",
	ErrInvalidValue:                "value must be positive",
	ErrDuplicateIdentifier:         "email or tax id already registered",
	ErrInvalidSpecializationChange: "customer specialization cannot be changed",
	ErrInsufficientStock:           "insufficient warehouse stock",
	ErrInsufficientOfferStock:      "insufficient offer quantity",
	ErrDuplicateOffer:              "offer already exists for product and vendor",
	ErrInvalidTransition:           "status transition not allowed",
	ErrPaymentIncomplete:           "payment allocations do not cover order total",
	ErrUnknownPaymentMethod:        "unknown payment method",
	ErrConflict:                    "concurrent update conflict",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                     http.StatusOK,
	ErrInternal:                    http.StatusInternalServerError,
	ErrNotFound:                    http.StatusNotFound,
	ErrInvalidRequest:              http.StatusBadRequest,
	ErrInvalidValue:                http.StatusBadRequest,
	ErrDuplicateIdentifier:         http.StatusConflict,
	ErrInvalidSpecializationChange: http.StatusConflict,
	ErrInsufficientStock:           http.StatusConflict,
	ErrInsufficientOfferStock:      http.StatusConflict,
	ErrDuplicateOffer:              http.StatusConflict,
	ErrInvalidTransition:           http.StatusConflict,
	ErrPaymentIncomplete:           http.StatusUnprocessableEntity,
	ErrUnknownPaymentMethod:        http.StatusBadRequest,
	ErrConflict:                    http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                     "0000",
	ErrInternal:                    "0001",
	ErrNotFound:                    "0002",
	ErrInvalidRequest:              "0003",
	ErrInvalidValue:                "0004",
	ErrDuplicateIdentifier:         "0005",
	ErrInvalidSpecializationChange: "0006",
	ErrInsufficientStock:           "0007",
	ErrInsufficientOfferStock:      "0008",
	ErrDuplicateOffer:              "0009",
	ErrInvalidTransition:           "0010",
	ErrPaymentIncomplete:           "0011",
	ErrUnknownPaymentMethod:        "0012",
	ErrConflict:                    "0013",
}

// Retryable reports whether the caller may retry the operation as-is after
// re-reading current state. Only lost races over shared counters qualify.
func (e ErrorType) Retryable() bool {
	switch e {
	case ErrInsufficientStock, ErrInsufficientOfferStock, ErrConflict:
		return true
	}
	return false
}
