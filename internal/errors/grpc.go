package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(toGRPC))
	for c, g := range toGRPC {
		m[g] = c
	}
	return m
}()

// GRPCCode returns the corresponding gRPC code, codes.Unknown for codes
// outside the table
func (c Code) GRPCCode() codes.Code {
	if g, ok := toGRPC[c]; ok {
		return g
	}
	return codes.Unknown
}

// ToGRPCError converts an error to a gRPC status error. Status errors pass
// through; everything else is mapped by GetCode and carries GetMessage, so
// causes never leak to clients.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	return status.Error(GetCode(err).GRPCCode(), GetMessage(err))
}

// FromGRPCError converts a gRPC status error back into an *Error. Codes with
// no local equivalent become CodeInternal.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code, ok := fromGRPC[st.Code()]
	if !ok {
		code = CodeInternal
	}

	return &Error{
		Code:    code,
		Message: st.Message(),
	}
}
