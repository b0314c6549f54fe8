package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// ExitCode is the process exit status for this error.
	ExitCode int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with the exit status derived from code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: ExitCodeFor(code),
	}
}

// --- Constructors ---

// Usage creates an error for a malformed command line.
func Usage(message string) *AppError {
	return New(ErrCodeUsage, message)
}

// InvalidConfig creates an error for a configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return New(ErrCodeInvalidConfig, message)
}

// InputRead creates an error for an input file that could not be read or parsed.
func InputRead(path string, cause error) *AppError {
	return New(ErrCodeInputRead, fmt.Sprintf("cannot read diarization file %s", path)).
		WithDetail("file", path).
		WithCause(cause)
}

// InvalidInputName creates an error for an input path whose name does not
// carry the expected suffix.
func InvalidInputName(path, suffix string) *AppError {
	return New(ErrCodeInputRead, fmt.Sprintf("input name %s must end in %q", path, suffix)).
		WithDetails(map[string]any{"file": path, "suffix": suffix})
}

// DataShape creates an error for a segment entry that does not match
// [speaker_index, start_seconds, end_seconds].
func DataShape(index int, reason string) *AppError {
	return New(ErrCodeDataShape, fmt.Sprintf("segment %d: %s", index, reason)).
		WithDetail("segment", index)
}

// InvertedSegment creates an error for a repaired segment whose start is not
// before its end.
func InvertedSegment(recording string, index int, start, end float64) *AppError {
	return New(ErrCodeInvertedSegment,
		fmt.Sprintf("recording %s segment %d: start %.2f is not before end %.2f", recording, index, start, end)).
		WithDetails(map[string]any{"recording": recording, "segment": index, "start": start, "end": end})
}

// DuplicateRecording creates an error for two input files sharing a recording ID.
func DuplicateRecording(recording, first, second string) *AppError {
	return New(ErrCodeDuplicateRecording,
		fmt.Sprintf("recording %s is produced by both %s and %s", recording, first, second)).
		WithDetails(map[string]any{"recording": recording, "first": first, "second": second})
}

// OutputWrite creates an error for a table that could not be written.
func OutputWrite(table string, cause error) *AppError {
	return New(ErrCodeOutputWrite, fmt.Sprintf("cannot write %s", table)).
		WithDetail("table", table).
		WithCause(cause)
}

// Internal creates an error for an unexpected failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "unexpected failure").WithCause(cause)
}

// --- Helpers ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// Wrap returns err as an AppError, wrapping plain errors as internal failures.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return Wrap(err).ExitCode
}
