package services

import "errors"

// Sentinel errors; controllers translate these into status codes.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrOrderNotCompleted = errors.New("order not completed")
	ErrDuplicateReview   = errors.New("duplicate review")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrItemUnavailable   = errors.New("menu item unavailable")

	ErrFileTooLarge = errors.New("file too large")
	ErrNotAnImage   = errors.New("not an image")
	ErrUploadFailed = errors.New("upload failed")
)

// PermissionError keeps the policy's denial reason while still matching
// errors.Is(err, ErrForbidden).
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string { return e.Reason }

func (e *PermissionError) Is(target error) bool { return target == ErrForbidden }
