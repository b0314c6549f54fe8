package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Invocation errors
const (
	// ErrCodeUsage indicates the command line was malformed.
	ErrCodeUsage ErrorCode = "USAGE"
	// ErrCodeInvalidConfig indicates the loaded configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Input errors
const (
	// ErrCodeInputRead indicates an input file is missing, unreadable or not valid JSON.
	ErrCodeInputRead ErrorCode = "INPUT_READ"
	// ErrCodeDataShape indicates a segment entry does not have the expected shape.
	ErrCodeDataShape ErrorCode = "DATA_SHAPE"
	// ErrCodeInvertedSegment indicates a repaired segment starts at or after its end.
	ErrCodeInvertedSegment ErrorCode = "INVERTED_SEGMENT"
	// ErrCodeDuplicateRecording indicates two input files map to the same recording ID.
	ErrCodeDuplicateRecording ErrorCode = "DUPLICATE_RECORDING"
)

// Output and internal errors
const (
	// ErrCodeOutputWrite indicates a table could not be written.
	ErrCodeOutputWrite ErrorCode = "OUTPUT_WRITE"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var exitCodes = map[ErrorCode]int{
	ErrCodeUsage:         ExitUsage,
	ErrCodeInvalidConfig: ExitUsage,
}

// ExitCodeFor returns the process exit status for an error code.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitFailure
}
