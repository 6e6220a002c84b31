package service

import "errors"

// Errors returned by [CredentialService]. Their messages are stable and safe
// to show to clients.
var (
	ErrInvalidDataProvided = errors.New("all fields are required")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")

	// ErrInternal wraps every failure the caller cannot act on. The wrapped
	// cause is for logs only.
	ErrInternal = errors.New("internal error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Kind classifies a service error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindConflict:
		return "ConflictError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindNotFound:
		return "NotFoundError"
	default:
		return "InternalError"
	}
}

// KindOf reports the [Kind] of err. Unknown errors are [KindInternal].
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidDataProvided):
		return KindValidation
	case errors.Is(err, ErrEmailAlreadyInUse):
		return KindConflict
	case errors.Is(err, ErrInvalidCredentials):
		return KindAuthentication
	case errors.Is(err, ErrUserNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// Message returns the client-facing text for err. Internal failures never
// expose their cause.
func Message(err error) string {
	if KindOf(err) == KindInternal {
		return ErrInternal.Error()
	}

	// the sentinel's own text, without any wrapping context
	for _, sentinel := range []error{ErrInvalidDataProvided, ErrEmailAlreadyInUse, ErrInvalidCredentials, ErrUserNotFound} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return ErrInternal.Error()
}
