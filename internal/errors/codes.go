package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes. The comments name where this service produces each one.
const (
	CodeOK Code = "OK"
	// CodeCanceled is a caller that went away mid-request
	CodeCanceled Code = "CANCELED"
	// CodeInvalidArgument is a blank ID, a bad config or a malformed seed file
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeDeadlineExceeded is a request that ran out of time
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	// CodeNotFound is an unknown character
	CodeNotFound Code = "NOT_FOUND"
	// CodeAlreadyExists is a roster ID collision
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeFailedPrecondition is reserved for state the caller must fix first
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	// CodeAborted is a ledger update that kept losing the optimistic lock
	CodeAborted Code = "ABORTED"
	// CodeUnimplemented is an operation this build does not serve
	CodeUnimplemented Code = "UNIMPLEMENTED"
	// CodeInternal is a storage, encoding or rendering failure
	CodeInternal Code = "INTERNAL"
	// CodeUnavailable is a storage backend that cannot be reached
	CodeUnavailable Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the status the view endpoints answer with. Aborted
// shares 409 with AlreadyExists.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeAborted:
		return http.StatusConflict
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
