package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-alignment/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.NotFound("alignment record not found")
	s.Equal("NOT_FOUND: alignment record not found", err.Error())
	s.Equal(errors.CodeNotFound, err.Code)
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("character %s not found", "char_1").WithMeta("character_id", "char_1")
	wrapped := errors.Wrap(base, "failed to load ledger")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("char_1", wrapped.Meta["character_id"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrapf(stderrors.New("connection refused"), "failed to reach %s", "redis")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Contains(wrapped.Error(), "connection refused")
	s.Nil(errors.Wrap(nil, "nothing"))

	timedOut := errors.Wrap(context.DeadlineExceeded, "failed to load ledger")
	s.Equal(errors.CodeDeadlineExceeded, timedOut.Code)
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	base := errors.Internal("write failed").WithMeta("key", "alignment:char_1")
	wrapped := errors.WrapWithCode(base, errors.CodeAborted, "ledger changed concurrently")

	s.Equal(errors.CodeAborted, wrapped.Code)
	s.Equal("alignment:char_1", wrapped.Meta["key"])
	s.True(errors.IsAborted(wrapped))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{name: "not found", err: errors.NotFound("missing"), expected: codes.NotFound},
		{name: "invalid argument", err: errors.InvalidArgument("bad"), expected: codes.InvalidArgument},
		{name: "aborted", err: errors.Abortedf("conflict on %s", "char_1"), expected: codes.Aborted},
		{name: "plain error", err: fmt.Errorf("boom"), expected: codes.Internal},
		{name: "deadline", err: fmt.Errorf("load ledger: %w", context.DeadlineExceeded), expected: codes.DeadlineExceeded},
		{name: "canceled", err: context.Canceled, expected: codes.Canceled},
		{name: "already status", err: status.Error(codes.Unavailable, "down"), expected: codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.expected, st.Code())
		})
	}

	s.NoError(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestToGRPCErrorHidesCause() {
	err := errors.Wrap(stderrors.New("dial tcp 10.0.0.3:6379: refused"), "failed to get alignment record")

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Equal("failed to get alignment record", st.Message())
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.NotFound, "character char_9 not found"))

	s.True(errors.IsNotFound(err))
	s.Equal("character char_9 not found", errors.GetMessage(err))

	s.True(errors.IsAlreadyExists(errors.FromGRPCError(status.Error(codes.AlreadyExists, "dup"))))
	s.True(errors.IsInternal(errors.FromGRPCError(status.Error(codes.DataLoss, "lost"))))

	plain := stderrors.New("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeRoundTrip() {
	for _, code := range []errors.Code{
		errors.CodeCanceled, errors.CodeInvalidArgument, errors.CodeDeadlineExceeded,
		errors.CodeNotFound, errors.CodeAlreadyExists, errors.CodeFailedPrecondition,
		errors.CodeAborted, errors.CodeUnimplemented, errors.CodeInternal, errors.CodeUnavailable,
	} {
		back := errors.FromGRPCError(status.Error(code.GRPCCode(), "x"))
		s.Equal(code, errors.GetCode(back), code.String())
	}
	s.Equal(codes.Unknown, errors.Code("BOGUS").GRPCCode())
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Equal(http.StatusConflict, errors.CodeAborted.HTTPStatus())
	s.Equal(http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
	s.Equal(http.StatusInternalServerError, errors.GetCode(stderrors.New("x")).HTTPStatus())
	s.Equal(http.StatusGatewayTimeout, errors.GetCode(context.DeadlineExceeded).HTTPStatus())
}
