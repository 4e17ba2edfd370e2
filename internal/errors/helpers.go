package errors

import (
	"context"
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error. Context cancellation and
// deadlines keep their own codes even when not wrapped in an *Error.
func GetCode(err error) Code {
	var customErr *Error
	switch {
	case err == nil:
		return CodeOK
	case errors.As(err, &customErr):
		return customErr.Code
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	default:
		return CodeInternal
	}
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound reports a missing character or record
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument reports a rejected input
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists reports a duplicate roster entry
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsAborted reports a ledger write that lost an optimistic-lock race
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsInternal reports a storage or encoding failure
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
