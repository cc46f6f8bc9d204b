package errors

import (
	stderrors "errors"
	"fmt"
)

// Engine failure kinds. Wrap them with context and test with errors.Is.
var (
	// ErrSourceUnavailable means an external fetch failed: timeout, transport
	// error or non-success response. Terminal for the account's run.
	ErrSourceUnavailable = stderrors.New("source unavailable")
	// ErrNotFound is an expected-but-absent lookup, such as no active invoice
	// for the cycle or an unknown category id.
	ErrNotFound = stderrors.New("not found")
	// ErrInvariantViolation means the source data contradicts a stated
	// invariant. The run must abort.
	ErrInvariantViolation = stderrors.New("invariant violation")
	// ErrDivisionUndefined marks a zero-length cycle or zero limit. It is
	// degraded to a sentinel value and never leaves the projector.
	ErrDivisionUndefined = stderrors.New("division undefined")
)

// Report delivery failures. The report itself is complete when these occur.
var (
	ErrExportFailed = stderrors.New("export failed")
	ErrNotifyFailed = stderrors.New("notification failed")
)

// EngineError annotates an engine failure with the operation and account it
// happened on.
type EngineError struct {
	Op        string
	AccountID int64
	Err       error
}

// NewEngineError wraps err for the given operation and account
func NewEngineError(op string, accountID int64, err error) *EngineError {
	return &EngineError{Op: op, AccountID: accountID, Err: err}
}

func (e *EngineError) Error() string {
	if e.AccountID != 0 {
		return fmt.Sprintf("%s (account %d): %v", e.Op, e.AccountID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// CodeFor maps an engine failure to its API error code. Unknown errors map
// to SystemInternalError.
func CodeFor(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrSourceUnavailable):
		return EngineSourceUnavailable
	case stderrors.Is(err, ErrNotFound):
		return EngineNotFound
	case stderrors.Is(err, ErrInvariantViolation):
		return EngineInvariantViolation
	case stderrors.Is(err, ErrDivisionUndefined):
		return EngineDivisionUndefined
	case stderrors.Is(err, ErrExportFailed):
		return ReportExportFailed
	case stderrors.Is(err, ErrNotifyFailed):
		return ReportNotifyFailed
	default:
		return SystemInternalError
	}
}

// WrapEngineError builds the error response for an engine failure. Internal
// errors keep the generic system message; engine kinds expose their own.
func WrapEngineError(err error, traceID string) (*ErrorResponse, error) {
	code := CodeFor(err)
	if code == SystemInternalError {
		return WrapSystemError(err, traceID)
	}

	var engineErr *EngineError
	if stderrors.As(err, &engineErr) && engineErr.AccountID != 0 {
		return NewErrorResponse(code, traceID,
			WithDetails(fmt.Sprintf("account %d: %s", engineErr.AccountID, engineErr.Op)),
		), err
	}

	return NewErrorResponse(code, traceID), err
}
