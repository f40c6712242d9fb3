package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrReportIDRequired = errors.New("report ID is required")
	ErrReportNotFound   = errors.New("report not found")
	ErrGenerateID       = errors.New("error generating report ID")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err      error
	Code     string // Código de erro para API
	ReportID string
	Details  string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, reportID string, details string) *ReportError {
	return &ReportError{
		Err:      err,
		Code:     code,
		ReportID: reportID,
		Details:  details,
	}
}
