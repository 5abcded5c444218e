package api

import (
	"errors"

	"connectrpc.com/connect"
)

// ErrorKindHeader carries the Kind of a failed call in the error metadata.
const ErrorKindHeader = "Tracker-Error-Kind"

// Kind discriminates tracker failures beyond the connect code.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindForbidden       Kind = "forbidden"
	KindInvalidCode     Kind = "invalid_code"
	KindInvalidState    Kind = "invalid_state"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnauthenticated Kind = "unauthenticated"
	KindRateLimited     Kind = "rate_limited"
	KindInternal        Kind = "internal"
)

// Code is the connect code a Kind is sent with.
func (k Kind) Code() connect.Code {
	switch k {
	case KindNotFound:
		return connect.CodeNotFound
	case KindConflict:
		return connect.CodeAlreadyExists
	case KindForbidden:
		return connect.CodePermissionDenied
	case KindInvalidCode, KindInvalidArgument:
		return connect.CodeInvalidArgument
	case KindInvalidState:
		return connect.CodeFailedPrecondition
	case KindUnauthenticated:
		return connect.CodeUnauthenticated
	case KindRateLimited:
		return connect.CodeResourceExhausted
	}
	return connect.CodeInternal
}

// NewError builds a connect error tagged with kind.
func NewError(kind Kind, err error) *connect.Error {
	cerr := connect.NewError(kind.Code(), err)
	cerr.Meta().Set(ErrorKindHeader, string(kind))
	return cerr
}

// KindOf reports the Kind of an error returned by Client. It returns the
// empty Kind for nil and falls back to the connect code when the server sent
// no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return KindInternal
	}
	if k := cerr.Meta().Get(ErrorKindHeader); k != "" {
		return Kind(k)
	}
	switch cerr.Code() {
	case connect.CodeNotFound:
		return KindNotFound
	case connect.CodeAlreadyExists:
		return KindConflict
	case connect.CodePermissionDenied:
		return KindForbidden
	case connect.CodeInvalidArgument:
		return KindInvalidArgument
	case connect.CodeFailedPrecondition:
		return KindInvalidState
	case connect.CodeUnauthenticated:
		return KindUnauthenticated
	case connect.CodeResourceExhausted:
		return KindRateLimited
	}
	return KindInternal
}
