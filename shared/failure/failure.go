package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a Failure. The set is closed; transports map each kind to their own codes.
type Kind string

const (
	KindInvalidInput         Kind = "INVALID_INPUT"
	KindInvalidTransition    Kind = "INVALID_TRANSITION"
	KindProviderUnavailable  Kind = "PROVIDER_UNAVAILABLE"
	KindDiscountInapplicable Kind = "DISCOUNT_INAPPLICABLE"
	KindAlreadyInvoiced      Kind = "ALREADY_INVOICED"
	KindOverApplication      Kind = "OVER_APPLICATION"
	KindAlreadySettled       Kind = "ALREADY_SETTLED"
	KindNotCompleted         Kind = "NOT_COMPLETED"
	KindHasApplications      Kind = "HAS_APPLICATIONS"
	KindNotIssued            Kind = "NOT_ISSUED"
	KindInvoiceNotFound      Kind = "INVOICE_NOT_FOUND"
	KindCreditExceedsInvoice Kind = "CREDIT_EXCEEDS_INVOICE"
	KindAlreadyCheckedIn     Kind = "ALREADY_CHECKED_IN"
	KindNoOpenWindow         Kind = "NO_OPEN_WINDOW"
	KindNotFound             Kind = "NOT_FOUND"
	KindUnauthorized         Kind = "UNAUTHORIZED"
	KindForbidden            Kind = "FORBIDDEN"
	KindConflict             Kind = "CONFLICT"
	KindInternal             Kind = "INTERNAL"
	KindUnimplemented        Kind = "UNIMPLEMENTED"
)

// Failure is a business or request error that callers can recover from.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Kind: KindInvalidInput, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Kind: KindInvalidInput, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Is matches failures by kind so errors.Is(err, &Failure{Kind: k}) works on wrapped chains.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// New returns a Failure of the given kind.
func New(kind Kind, message string) error {
	return &Failure{
		Kind:    kind,
		Message: message,
	}
}

// Newf returns a Failure of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Failure{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// BadRequest returns a new InvalidInput failure derived from err.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInvalidInput,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new InvalidInput failure with message set from string.
func BadRequestFromString(msg string) error {
	return New(KindInvalidInput, msg)
}

func Unauthorized(msg string) error {
	return New(KindUnauthorized, msg)
}

// InternalError returns a new Failure for internal errors derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

func Unimplemented(methodName string) error {
	return New(KindUnimplemented, methodName)
}

func NotFound(entityName string) error {
	return New(KindNotFound, entityName)
}

func Conflict(message string) error {
	return New(KindConflict, message)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

// InvalidTransition reports a state-machine guard violation.
func InvalidTransition(entity, from, operation string) error {
	return Newf(KindInvalidTransition, "cannot %s %s in status %s", operation, entity, from)
}

// KindOf returns the kind of the first Failure in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err carries a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}
