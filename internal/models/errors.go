package models

import "fmt"

// ValidationError is a recoverable, field-level failure. The wizard stays on
// its current step when one is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError means a requested catalog entry does not exist. No partial
// state is created on its behalf.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// PaymentError is an authorization failure from the payment processor. The
// wizard returns to the payment step; it never advances past a failed charge.
type PaymentError struct {
	Method string `json:"method"`
	Reason string `json:"reason"`
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment via %s failed: %s", e.Method, e.Reason)
}

func NewPaymentError(method, reason string) *PaymentError {
	return &PaymentError{Method: method, Reason: reason}
}
