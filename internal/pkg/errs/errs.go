package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound    = fmt.Errorf("object not found")
	ErrValueIsInvalid    = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange = fmt.Errorf("value is out of range")
	ErrValueIsRequired   = fmt.Errorf("value is required")
	ErrCartIsEmpty       = fmt.Errorf("cart is empty")
	ErrForbidden         = fmt.Errorf("forbidden")
	ErrUnverified        = fmt.Errorf("not verified")
	ErrConflict          = fmt.Errorf("conflict")
)

// sanitize collapses newlines so arbitrary values cannot break log lines.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value failed domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value is outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// CartIsEmptyError indicates checkout was attempted on a session with no cart items.
type CartIsEmptyError struct {
	SessionID string
	Cause     error
}

func NewCartIsEmptyError(sessionID string) *CartIsEmptyError {
	return &CartIsEmptyError{SessionID: sessionID}
}

func (e *CartIsEmptyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrCartIsEmpty, e.SessionID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrCartIsEmpty, e.SessionID)
}

func (e *CartIsEmptyError) Unwrap() error {
	return ErrCartIsEmpty
}

// ForbiddenError indicates an actor attempted to act on a resource it does not own.
type ForbiddenError struct {
	Actor    string
	Resource string
	Cause    error
}

func NewForbiddenError(actor, resource string) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Resource: resource}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s may not act on %s (cause: %s)", ErrForbidden, e.Actor, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s may not act on %s", ErrForbidden, e.Actor, e.Resource)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnverifiedError indicates a vendor attempted an operation that requires
// prior admin verification.
type UnverifiedError struct {
	ParamName string
	Cause     error
}

func NewUnverifiedError(paramName string) *UnverifiedError {
	return &UnverifiedError{ParamName: paramName}
}

func (e *UnverifiedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnverified, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnverified, e.ParamName)
}

func (e *UnverifiedError) Unwrap() error {
	return ErrUnverified
}

// ConflictError indicates a concurrent modification race or an illegal
// state transition. Callers may retry the operation idempotently.
type ConflictError struct {
	Operation string
	Cause     error
}

func NewConflictError(operation string) *ConflictError {
	return &ConflictError{Operation: operation}
}

func NewConflictErrorWithCause(operation string, cause error) *ConflictError {
	return &ConflictError{Operation: operation, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Operation)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
