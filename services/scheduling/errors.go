package scheduling

import "fmt"

// ErrorKind is the closed set of engine rejection kinds. Handlers match it
// exhaustively when translating to transport responses.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "notFound"
	KindUnauthorized        ErrorKind = "unauthorized"
	KindInvalidState        ErrorKind = "invalidState"
	KindBookingConflict     ErrorKind = "bookingConflict"
	KindStaffUnavailable    ErrorKind = "staffUnavailable"
	KindOutsideWorkingHours ErrorKind = "outsideWorkingHours"
	KindBreakConflict       ErrorKind = "breakConflict"
	KindVacationConflict    ErrorKind = "vacationConflict"
	KindVacationOverlap     ErrorKind = "vacationOverlap"
	KindValidation          ErrorKind = "validationError"
)

// Error is a scheduling-rule rejection. Count carries the affected-record
// count where a rule reports one (the working-day toggle guard).
type Error struct {
	Kind    ErrorKind
	Message string
	Count   int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the ErrorKind from an engine error, or "" for foreign
// errors.
func KindOf(err error) ErrorKind {
	if se, ok := err.(*Error); ok {
		return se.Kind
	}
	return ""
}

func NewNotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(format string, args ...interface{}) error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidState(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func NewBookingConflict(format string, args ...interface{}) error {
	return &Error{Kind: KindBookingConflict, Message: fmt.Sprintf(format, args...)}
}

func NewStaffUnavailable(format string, args ...interface{}) error {
	return &Error{Kind: KindStaffUnavailable, Message: fmt.Sprintf(format, args...)}
}

func NewOutsideWorkingHours(format string, args ...interface{}) error {
	return &Error{Kind: KindOutsideWorkingHours, Message: fmt.Sprintf(format, args...)}
}

func NewBreakConflict(format string, args ...interface{}) error {
	return &Error{Kind: KindBreakConflict, Message: fmt.Sprintf(format, args...)}
}

func NewVacationConflict(format string, args ...interface{}) error {
	return &Error{Kind: KindVacationConflict, Message: fmt.Sprintf(format, args...)}
}

func NewVacationOverlap(format string, args ...interface{}) error {
	return &Error{Kind: KindVacationOverlap, Message: fmt.Sprintf(format, args...)}
}

func NewValidation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}
