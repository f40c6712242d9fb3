package uploading

import (
	"errors"
	"fmt"
)

var (
	ErrFileNameRequired     = errors.New("file name is required")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileTooLarge         = errors.New("file exceeds size limit")
	ErrUploadNotFound       = errors.New("upload not found")
	ErrGenerateID           = errors.New("error generating upload ID")
	ErrScheduleCompletion   = errors.New("error scheduling upload completion")
)

// UploadError é um erro com contexto adicional para importações
type UploadError struct {
	Err      error
	Code     string
	UploadID string
	Details  string
}

func (e *UploadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func NewUploadError(err error, code string, uploadID string, details string) *UploadError {
	return &UploadError{
		Err:      err,
		Code:     code,
		UploadID: uploadID,
		Details:  details,
	}
}
