package errs

import "errors"

// Kind is the stable, machine-readable classification of an error.
type Kind string

const (
	KindUnauthenticated     Kind = "unauthenticated"
	KindForbidden           Kind = "forbidden"
	KindNotFound            Kind = "not_found"
	KindInvalidState        Kind = "invalid_state"
	KindResourceUnavailable Kind = "resource_unavailable"
	KindBadRequest          Kind = "bad_request"
	KindValidation          Kind = "validation_error"
	KindInternal            Kind = "internal"
)

// KindOf walks the error chain and reports the first matching kind.
// Access control failures win over everything else, so a caller never learns
// more about a resource than its role allows. Unknown errors are Internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrResourceUnavailable):
		return KindResourceUnavailable
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrVersionIsInvalid):
		return KindInvalidState
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindValidation
	default:
		return KindInternal
	}
}
