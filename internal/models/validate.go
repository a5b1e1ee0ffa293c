package models

import "fmt"

// ValidationError reports a malformed request field. It is the only
// condition that terminates an evaluation abnormally; dependency
// failures degrade into findings instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// Validate checks the request fields the engine cannot work without.
func (r *FraudCheckRequest) Validate() error {
	if r.PaymentID == "" {
		return &ValidationError{Field: "payment_id", Reason: "is required"}
	}
	if r.UserID == "" {
		return &ValidationError{Field: "user_id", Reason: "is required"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if len(r.Currency) != 3 {
		return &ValidationError{Field: "currency", Reason: "must be a 3-letter code"}
	}
	return nil
}
