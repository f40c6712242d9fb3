package lead

import (
	"errors"
	"fmt"
)

var (
	ErrLeadIDRequired = errors.New("lead ID is required")
	ErrLeadNotFound   = errors.New("lead not found")
	ErrInvalidScore   = errors.New("invalid lead score")
	ErrInvalidStatus  = errors.New("invalid lead status")
)

// LeadError é um erro com contexto adicional para leads
type LeadError struct {
	Err     error
	Code    string
	LeadID  string
	Details string
}

func (e *LeadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *LeadError) Unwrap() error {
	return e.Err
}

func NewLeadError(err error, code string, leadID string, details string) *LeadError {
	return &LeadError{
		Err:     err,
		Code:    code,
		LeadID:  leadID,
		Details: details,
	}
}
