package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrNetwork            = errors.New("network error")
	ErrNotFound           = errors.New("not found")
)

var (
	ErrFileTooLarge       = fmt.Errorf("%w: max file size is 20MB", ErrValidation)
	ErrEmptyParticipants  = fmt.Errorf("%w: at least one participant is required", ErrValidation)
	ErrMessageTooLong     = fmt.Errorf("%w: message exceeds maximum length", ErrValidation)
	ErrUnsupportedSticker = fmt.Errorf("%w: content url is required", ErrValidation)
	ErrForeignPreview     = fmt.Errorf("%w: preview is not a blob store object", ErrValidation)

	ErrLastAdmin = fmt.Errorf("%w: you must set another one to be an admin", ErrInvariantViolation)
	ErrNotAdmin  = fmt.Errorf("%w: only group admins can change members", ErrInvariantViolation)
	ErrNotGroup  = fmt.Errorf("%w: conversation is not a group", ErrInvariantViolation)

	ErrUploadInProgress = errors.New("file upload in progress")
)

// NetworkError marks a failed store or feed round-trip.
func NetworkError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrNetwork, op, err)
}
